package repository

import (
	"wearspace-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(favorite *model.Favorite) error
	Find(userID, productID uuid.UUID) (*model.Favorite, error)
	FindByUser(userID uuid.UUID) ([]model.Favorite, error)
	Delete(userID, productID uuid.UUID) error
}

type favoriteRepo struct {
	db *gorm.DB
}

func NewFavoriteRepo(db *gorm.DB) FavoriteRepository {
	return &favoriteRepo{db}
}

func (r *favoriteRepo) Create(favorite *model.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *favoriteRepo) Find(userID, productID uuid.UUID) (*model.Favorite, error) {
	var favorite model.Favorite
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepo) FindByUser(userID uuid.UUID) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.db.Preload("Product").Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error
	return favorites, err
}

func (r *favoriteRepo) Delete(userID, productID uuid.UUID) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&model.Favorite{}).Error
}

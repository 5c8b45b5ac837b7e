package repository

import (
	"wearspace-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindAll() ([]model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	// Delete runs inside tx so the favorite cleanup and the row removal
	// commit or roll back together.
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	// Favorit ikut terhapus; transaksi lama menjadi milik tamu
	if err := tx.Where("user_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
		return err
	}
	if err := tx.Model(&model.Transaction{}).Where("user_id = ?", id).Update("user_id", nil).Error; err != nil {
		return err
	}
	return tx.Delete(&model.User{}, "id = ?", id).Error
}

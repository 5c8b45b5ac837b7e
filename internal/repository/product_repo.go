package repository

import (
	"wearspace-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	// DecrementStock performs a conditional single-unit decrement inside tx.
	// It reports false when the row had no stock left, so two concurrent
	// purchases of the last unit cannot both succeed.
	DecrementStock(tx *gorm.DB, id uuid.UUID) (bool, error)
	// Delete removes the product and its transactions and favorites inside tx.
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("created_at ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) DecrementStock(tx *gorm.DB, id uuid.UUID) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock > 0", id).
		UpdateColumn("stock", gorm.Expr("stock - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *productRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	// Cascade dilakukan eksplisit agar berlaku juga tanpa FK enforcement
	if err := tx.Where("product_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
		return err
	}
	if err := tx.Where("product_id = ?", id).Delete(&model.Transaction{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Product{}, "id = ?", id).Error
}

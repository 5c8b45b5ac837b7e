package repository

import (
	"wearspace-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	FindAll() ([]model.Transaction, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	UpdateStatus(id uuid.UUID, status model.TransactionStatus) error
	Delete(id uuid.UUID) error
	GetDashboardStats() (*DashboardStats, error)
}

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalProducts     int64 `json:"total_products"`
	TotalBrands       int64 `json:"total_brands"`
	LowStockCount     int64 `json:"low_stock_count"`
	TotalTransactions int64 `json:"total_transactions"`
	PendingCount      int64 `json:"pending_count"`
	SuccessCount      int64 `json:"success_count"`
	CancelledCount    int64 `json:"cancelled_count"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	// Preload Product dan User untuk response
	err := r.db.Preload("Product").Preload("User").Order("transaction_date DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Product").Preload("User").First(&transaction, "id = ?", id).Error
	return &transaction, err
}

func (r *transactionRepo) UpdateStatus(id uuid.UUID, status model.TransactionStatus) error {
	return r.db.Model(&model.Transaction{}).
		Where("id = ?", id).
		Update("transaction_status", status).Error
}

func (r *transactionRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Transaction{}, "id = ?", id).Error
}

func (r *transactionRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Brand{}).Count(&stats.TotalBrands).Error; err != nil {
		return nil, err
	}
	// Low stock (stock < 10)
	if err := r.db.Model(&model.Product{}).Where("stock < ?", 10).Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Transaction{}).Count(&stats.TotalTransactions).Error; err != nil {
		return nil, err
	}

	counts := map[model.TransactionStatus]*int64{
		model.StatusPending:   &stats.PendingCount,
		model.StatusSuccess:   &stats.SuccessCount,
		model.StatusCancelled: &stats.CancelledCount,
	}
	for status, dst := range counts {
		if err := r.db.Model(&model.Transaction{}).
			Where("transaction_status = ?", status).
			Count(dst).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

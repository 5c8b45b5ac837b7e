package service

import (
	"errors"
	"fmt"
	"strings"

	"wearspace-api/internal/apperr"
	"wearspace-api/internal/model"
	"wearspace-api/internal/repository"
	"wearspace-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionService interface {
	// Create runs the purchase workflow. callerID is nil for guest checkout.
	Create(req *CreateTransactionRequest, callerID *uuid.UUID) (*model.Transaction, error)
	GetAll() ([]model.Transaction, error)
	GetByID(id uuid.UUID) (*model.Transaction, error)
	UpdateStatus(id uuid.UUID, status model.TransactionStatus) (*model.Transaction, error)
	Delete(id uuid.UUID) error
}

type CreateTransactionRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	CustomerName    string `json:"customer_name" validate:"required"`
	ShippingAddress string `json:"shipping_address" validate:"required"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
	PurchasedSize   string `json:"purchased_size" validate:"required"`
	PurchasedColor  string `json:"purchased_color" validate:"required"`
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	db              *gorm.DB
}

func NewTransactionService(transactionRepo repository.TransactionRepository, productRepo repository.ProductRepository, db *gorm.DB) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		db:              db,
	}
}

func (s *transactionService) Create(req *CreateTransactionRequest, callerID *uuid.UUID) (*model.Transaction, error) {
	// 1. Validasi input
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.MissingFields(validator.FieldNames(errs))
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apperr.MalformedID("product ID")
	}

	transaction := &model.Transaction{
		UserID:            callerID,
		ProductID:         productID,
		CustomerName:      req.CustomerName,
		ShippingAddress:   req.ShippingAddress,
		PaymentMethod:     req.PaymentMethod,
		PurchasedSize:     req.PurchasedSize,
		PurchasedColor:    req.PurchasedColor,
		TransactionStatus: model.StatusPending,
	}

	// Gunakan Transaction Block (Atomic Operation)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.InvalidReference("Product not found.")
			}
			return err
		}

		if product.Stock <= 0 {
			return apperr.OutOfStock("Product out of stock.")
		}

		// Decrement bersyarat: hanya satu pembeli yang menang pada unit terakhir
		ok, err := s.productRepo.DecrementStock(tx, product.ID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.OutOfStock("Product out of stock.")
		}

		return tx.Create(transaction).Error
	})
	if err != nil {
		return nil, err
	}

	// Reload dengan Product dan User untuk response
	return s.transactionRepo.FindByID(transaction.ID)
}

func (s *transactionService) GetAll() ([]model.Transaction, error) {
	return s.transactionRepo.FindAll()
}

func (s *transactionService) GetByID(id uuid.UUID) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Transaction not found.")
		}
		return nil, err
	}
	return transaction, nil
}

func (s *transactionService) UpdateStatus(id uuid.UUID, status model.TransactionStatus) (*model.Transaction, error) {
	// Resolusi dulu, baru validasi enum: id tak dikenal selalu 404
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	if !model.ValidStatus(status) {
		return nil, apperr.InvalidEnum(fmt.Sprintf("Invalid status. Must be one of: %s", strings.Join(model.StatusNames(), ", ")))
	}

	// Overwrite tanpa pembatasan transisi; idempotent untuk nilai yang sama
	if err := s.transactionRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.transactionRepo.FindByID(id)
}

func (s *transactionService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.transactionRepo.Delete(id)
}

package service

import (
	"errors"

	"wearspace-api/internal/apperr"
	"wearspace-api/internal/model"
	"wearspace-api/internal/repository"
	"wearspace-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(req *model.Product) (*model.Product, error)
	GetAll() ([]model.Product, error)
	GetByID(id uuid.UUID) (*model.Product, error)
	Update(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error)
	Delete(id uuid.UUID) error
}

// UpdateProductRequest is the allow-list of mutable product fields.
type UpdateProductRequest struct {
	Name        *string           `json:"name"`
	BrandID     *string           `json:"brand_id"`
	Price       *float64          `json:"price" validate:"omitempty,gt=0"`
	Description *string           `json:"description"`
	ImageURL    *string           `json:"image_url"`
	Material    *string           `json:"material"`
	Category    *string           `json:"category"`
	Stock       *int              `json:"stock" validate:"omitempty,gte=0"`
	Sizes       *model.StringList `json:"sizes"`
	Colors      *model.StringList `json:"colors"`
}

type productService struct {
	productRepo repository.ProductRepository
	brandRepo   repository.BrandRepository
	db          *gorm.DB
}

func NewProductService(productRepo repository.ProductRepository, brandRepo repository.BrandRepository, db *gorm.DB) ProductService {
	return &productService{
		productRepo: productRepo,
		brandRepo:   brandRepo,
		db:          db,
	}
}

func (s *productService) Create(req *model.Product) (*model.Product, error) {
	// 1. Validasi struct dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.MissingFields(validator.FieldNames(errs))
	}

	// 2. Brand harus ada
	if _, err := s.brandRepo.FindByID(req.BrandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.InvalidReference("Brand not found for the given brand_id.")
		}
		return nil, err
	}

	if err := s.productRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *productService) GetAll() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found.")
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.MissingFields(validator.FieldNames(errs))
	}

	if req.BrandID != nil {
		brandID, err := uuid.Parse(*req.BrandID)
		if err != nil {
			return nil, apperr.MalformedID("brand ID")
		}
		if _, err := s.brandRepo.FindByID(brandID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.InvalidReference("Brand not found for the given brand_id.")
			}
			return nil, err
		}
		product.BrandID = brandID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Material != nil {
		product.Material = *req.Material
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Sizes != nil {
		product.Sizes = *req.Sizes
	}
	if req.Colors != nil {
		product.Colors = *req.Colors
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	// Transaksi dan favorit produk ikut terhapus, atomik
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.productRepo.Delete(tx, id)
	})
}

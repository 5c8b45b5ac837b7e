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

type BrandService interface {
	Create(req *CreateBrandRequest) (*model.Brand, error)
	GetAll() ([]model.Brand, error)
	GetByID(id uuid.UUID) (*model.Brand, error)
	Update(id uuid.UUID, req *UpdateBrandRequest) (*model.Brand, error)
	Delete(id uuid.UUID) error
}

type CreateBrandRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateBrandRequest is the allow-list of mutable brand fields.
type UpdateBrandRequest struct {
	Name *string `json:"name"`
}

type brandService struct {
	brandRepo repository.BrandRepository
}

func NewBrandService(brandRepo repository.BrandRepository) BrandService {
	return &brandService{brandRepo: brandRepo}
}

func (s *brandService) Create(req *CreateBrandRequest) (*model.Brand, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.MissingFields(validator.FieldNames(errs))
	}

	// Pre-check duplikasi nama; unique index tetap backstop
	if existing, _ := s.brandRepo.FindByName(req.Name); existing != nil {
		return nil, apperr.Duplicate("Brand with this name already exists.")
	}

	brand := &model.Brand{Name: req.Name}
	if err := s.brandRepo.Create(brand); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Duplicate("Brand with this name already exists.")
		}
		return nil, err
	}
	return brand, nil
}

func (s *brandService) GetAll() ([]model.Brand, error) {
	return s.brandRepo.FindAll()
}

func (s *brandService) GetByID(id uuid.UUID) (*model.Brand, error) {
	brand, err := s.brandRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Brand not found.")
		}
		return nil, err
	}
	return brand, nil
}

func (s *brandService) Update(id uuid.UUID, req *UpdateBrandRequest) (*model.Brand, error) {
	brand, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != brand.Name {
		if existing, _ := s.brandRepo.FindByName(*req.Name); existing != nil {
			return nil, apperr.Duplicate("Brand name already exists.")
		}
		brand.Name = *req.Name
	}

	if err := s.brandRepo.Update(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.brandRepo.Delete(id)
}

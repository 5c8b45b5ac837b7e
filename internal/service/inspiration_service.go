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

type UpdateInspirationRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Tag         *string `json:"tag,omitempty"`
}

type InspirationService interface {
	Create(inspiration *model.Inspiration) (*model.Inspiration, error)
	GetAll(tag string) ([]model.Inspiration, error)
	GetByID(id uuid.UUID) (*model.Inspiration, error)
	Update(id uuid.UUID, req *UpdateInspirationRequest) (*model.Inspiration, error)
	Delete(id uuid.UUID) error
}

type inspirationService struct {
	inspirationRepo repository.InspirationRepository
}

func NewInspirationService(inspirationRepo repository.InspirationRepository) InspirationService {
	return &inspirationService{inspirationRepo}
}

func (s *inspirationService) Create(inspiration *model.Inspiration) (*model.Inspiration, error) {
	if errs := validator.ValidateStruct(inspiration); errs != nil {
		return nil, apperr.MissingFields(validator.FieldNames(errs))
	}

	if err := s.inspirationRepo.Create(inspiration); err != nil {
		return nil, err
	}
	return inspiration, nil
}

func (s *inspirationService) GetAll(tag string) ([]model.Inspiration, error) {
	return s.inspirationRepo.FindAll(tag)
}

func (s *inspirationService) GetByID(id uuid.UUID) (*model.Inspiration, error) {
	inspiration, err := s.inspirationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Inspiration not found.")
		}
		return nil, err
	}
	return inspiration, nil
}

func (s *inspirationService) Update(id uuid.UUID, req *UpdateInspirationRequest) (*model.Inspiration, error) {
	inspiration, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		inspiration.Title = *req.Title
	}
	if req.Description != nil {
		inspiration.Description = *req.Description
	}
	if req.ImageURL != nil {
		inspiration.ImageURL = *req.ImageURL
	}
	if req.Tag != nil {
		inspiration.Tag = *req.Tag
	}

	if errs := validator.ValidateStruct(inspiration); errs != nil {
		return nil, apperr.MissingFields(validator.FieldNames(errs))
	}

	if err := s.inspirationRepo.Update(inspiration); err != nil {
		return nil, err
	}
	return inspiration, nil
}

func (s *inspirationService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.inspirationRepo.Delete(id)
}

package repository

import (
	"strings"

	"wearspace-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InspirationRepository interface {
	Create(inspiration *model.Inspiration) error
	// FindAll filters by case-insensitive substring of the tag field when
	// tag is non-empty.
	FindAll(tag string) ([]model.Inspiration, error)
	FindByID(id uuid.UUID) (*model.Inspiration, error)
	Update(inspiration *model.Inspiration) error
	Delete(id uuid.UUID) error
}

type inspirationRepo struct {
	db *gorm.DB
}

func NewInspirationRepo(db *gorm.DB) InspirationRepository {
	return &inspirationRepo{db}
}

func (r *inspirationRepo) Create(inspiration *model.Inspiration) error {
	return r.db.Create(inspiration).Error
}

func (r *inspirationRepo) FindAll(tag string) ([]model.Inspiration, error) {
	var inspirations []model.Inspiration
	query := r.db.Order("created_at DESC")
	if tag != "" {
		// LOWER + LIKE instead of ILIKE so the filter also works on SQLite
		query = query.Where("LOWER(tag) LIKE ?", "%"+strings.ToLower(tag)+"%")
	}
	err := query.Find(&inspirations).Error
	return inspirations, err
}

func (r *inspirationRepo) FindByID(id uuid.UUID) (*model.Inspiration, error) {
	var inspiration model.Inspiration
	err := r.db.First(&inspiration, "id = ?", id).Error
	return &inspiration, err
}

func (r *inspirationRepo) Update(inspiration *model.Inspiration) error {
	return r.db.Save(inspiration).Error
}

func (r *inspirationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Inspiration{}, "id = ?", id).Error
}

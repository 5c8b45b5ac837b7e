package service

import (
	"errors"

	"wearspace-api/internal/apperr"
	"wearspace-api/internal/model"
	"wearspace-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavoriteService interface {
	Add(userID, productID uuid.UUID) error
	Remove(userID, productID uuid.UUID) error
	// ListProducts returns the products the user has favorited.
	ListProducts(userID uuid.UUID) ([]model.Product, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

func (s *favoriteService) Add(userID, productID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User or Product not found.")
		}
		return err
	}
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User or Product not found.")
		}
		return err
	}

	// Pre-check; the composite primary key catches the race
	if existing, _ := s.favoriteRepo.Find(userID, productID); existing != nil {
		return apperr.Duplicate("Product already in favorites.")
	}

	favorite := &model.Favorite{UserID: userID, ProductID: productID}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Duplicate("Product already in favorites.")
		}
		return err
	}
	return nil
}

func (s *favoriteService) Remove(userID, productID uuid.UUID) error {
	if _, err := s.favoriteRepo.Find(userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Favorite not found.")
		}
		return err
	}
	return s.favoriteRepo.Delete(userID, productID)
}

func (s *favoriteService) ListProducts(userID uuid.UUID) ([]model.Product, error) {
	favorites, err := s.favoriteRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(favorites))
	for _, favorite := range favorites {
		if favorite.Product != nil {
			products = append(products, *favorite.Product)
		}
	}
	return products, nil
}

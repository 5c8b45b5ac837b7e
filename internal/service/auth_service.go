package service

import (
	"errors"

	"wearspace-api/internal/apperr"
	"wearspace-api/internal/model"
	"wearspace-api/internal/repository"
	"wearspace-api/pkg/jwt"
	"wearspace-api/pkg/validator"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(req *RegisterRequest) (*model.User, error)
	Login(email, password string) (*LoginResult, error)
	// ResolveIdentity verifies a token and loads the user behind it. The
	// caller decides whether a failure means 401 or anonymous.
	ResolveIdentity(tokenString string) (*model.User, error)
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginResult struct {
	Token string
	User  *model.User
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req *RegisterRequest) (*model.User, error) {
	// 1. Validasi input
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.MissingFields(validator.FieldNames(errs))
	}

	// 2. Cek duplikasi email sebelum insert
	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, apperr.Duplicate("User with this email already exists.")
	}

	user := &model.User{
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	// Unique index tetap menjadi backstop terhadap race register
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Duplicate("User with this email already exists.")
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		// Never reveal whether the email exists
		return nil, apperr.InvalidCredentials("Invalid credentials.")
	}

	if !user.CheckPassword(password) {
		return nil, apperr.InvalidCredentials("Invalid credentials.")
	}

	token, err := jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

func (s *authService) ResolveIdentity(tokenString string) (*model.User, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}
	return user, nil
}

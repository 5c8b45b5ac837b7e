package handler

import (
	"os"
	"time"

	"wearspace-api/internal/apperr"
	"wearspace-api/internal/service"
	"wearspace-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles account creation
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "User registered successfully!",
		"user":    user,
	})
}

// Login authenticates a user and sets the session cookie
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	var missing []string
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return respondError(c, apperr.MissingFields(missing))
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     jwt.SessionCookie,
		Value:    result.Token,
		Expires:  time.Now().Add(jwt.SessionDuration),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   os.Getenv("COOKIE_SECURE") == "true",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful.",
		"user":    result.User,
		"token":   result.Token,
	})
}

// Logout expires the session cookie
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     jwt.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   os.Getenv("COOKIE_SECURE") == "true",
	})

	return c.JSON(fiber.Map{"message": "Logged out successfully."})
}

package middleware

import (
	"strings"

	"wearspace-api/internal/repository"
	"wearspace-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// tokenFromRequest picks the session token out of the request: the
// session cookie wins, the Authorization header is the fallback.
func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(jwt.SessionCookie); cookie != "" {
		return cookie
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

// RequireAuth validates the session token and sets user info in context
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Authentication required."})
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token."})
		}

		// Pastikan user masih ada di DB
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token."})
		}

		c.Locals("user_id", user.ID)
		c.Locals("user_email", user.Email)

		return c.Next()
	}
}

// OptionalAuth resolves the session token when one is present but never
// rejects the request. Anonymous callers pass through with no identity.
func OptionalAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return c.Next()
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Next()
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Next()
		}

		c.Locals("user_id", user.ID)
		c.Locals("user_email", user.Email)

		return c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID, or nil for guests.
func CurrentUserID(c *fiber.Ctx) *uuid.UUID {
	if id, ok := c.Locals("user_id").(uuid.UUID); ok {
		return &id
	}
	return nil
}

package handler

import (
	"wearspace-api/internal/apperr"
	"wearspace-api/internal/middleware"
	"wearspace-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

type AddFavoriteRequest struct {
	ProductID string `json:"product_id"`
}

// AddFavorite marks a product as favorited by the caller
// POST /api/favorites
func (h *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		return respondError(c, apperr.AuthRequired("Authentication required."))
	}

	var req AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.ProductID == "" {
		return respondError(c, apperr.MissingFields([]string{"product_id"}))
	}

	productID, err := parseUUID(req.ProductID, "product ID")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.favoriteService.Add(*userID, productID); err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product added to favorites."})
}

// ListFavorites returns the caller's favorited products
// GET /api/favorites
func (h *FavoriteHandler) ListFavorites(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		return respondError(c, apperr.AuthRequired("Authentication required."))
	}

	products, err := h.favoriteService.ListProducts(*userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// RemoveFavorite unfavorites a product
// DELETE /api/favorites/:product_id
func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		return respondError(c, apperr.AuthRequired("Authentication required."))
	}

	productID, err := parseUUID(c.Params("product_id"), "product ID")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.favoriteService.Remove(*userID, productID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}

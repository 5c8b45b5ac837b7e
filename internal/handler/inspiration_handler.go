package handler

import (
	"wearspace-api/internal/model"
	"wearspace-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InspirationHandler struct {
	inspirationService service.InspirationService
}

func NewInspirationHandler(inspirationService service.InspirationService) *InspirationHandler {
	return &InspirationHandler{inspirationService: inspirationService}
}

// CreateInspiration handles lookbook entry creation
// POST /api/inspirations
func (h *InspirationHandler) CreateInspiration(c *fiber.Ctx) error {
	var inspiration model.Inspiration
	if err := c.BodyParser(&inspiration); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.inspirationService.Create(&inspiration)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(created)
}

// GetAllInspirations lists entries, optionally filtered by tag substring
// GET /api/inspirations?tag=casual
func (h *InspirationHandler) GetAllInspirations(c *fiber.Ctx) error {
	inspirations, err := h.inspirationService.GetAll(c.Query("tag"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inspirations)
}

// GET /api/inspirations/:id
func (h *InspirationHandler) GetInspiration(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"), "inspiration ID")
	if err != nil {
		return respondError(c, err)
	}

	inspiration, err := h.inspirationService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inspiration)
}

// PUT /api/inspirations/:id
func (h *InspirationHandler) UpdateInspiration(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"), "inspiration ID")
	if err != nil {
		return respondError(c, err)
	}

	var req service.UpdateInspirationRequest
	if err := decodeStrict(c, &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	inspiration, err := h.inspirationService.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inspiration)
}

// DELETE /api/inspirations/:id
func (h *InspirationHandler) DeleteInspiration(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"), "inspiration ID")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.inspirationService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}

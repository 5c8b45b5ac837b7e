package handler

import (
	"wearspace-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BrandHandler struct {
	brandService service.BrandService
}

func NewBrandHandler(brandService service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// CreateBrand handles brand creation
// POST /api/brands
func (h *BrandHandler) CreateBrand(c *fiber.Ctx) error {
	var req service.CreateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	brand, err := h.brandService.Create(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(brand)
}

// GET /api/brands
func (h *BrandHandler) GetAllBrands(c *fiber.Ctx) error {
	brands, err := h.brandService.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(brands)
}

// GET /api/brands/:id
func (h *BrandHandler) GetBrand(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"), "brand ID")
	if err != nil {
		return respondError(c, err)
	}

	brand, err := h.brandService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(brand)
}

// PUT /api/brands/:id
func (h *BrandHandler) UpdateBrand(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"), "brand ID")
	if err != nil {
		return respondError(c, err)
	}

	var req service.UpdateBrandRequest
	if err := decodeStrict(c, &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	brand, err := h.brandService.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(brand)
}

// DELETE /api/brands/:id
func (h *BrandHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"), "brand ID")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.brandService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}

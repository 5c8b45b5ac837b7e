package handler

import (
	"wearspace-api/internal/model"
	"wearspace-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct handles product creation
// POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.productService.Create(&product)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(created)
}

// GET /api/products
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"), "product ID")
	if err != nil {
		return respondError(c, err)
	}

	product, err := h.productService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// UpdateProduct applies a partial update
// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"), "product ID")
	if err != nil {
		return respondError(c, err)
	}

	var req service.UpdateProductRequest
	if err := decodeStrict(c, &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.productService.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// DeleteProduct removes a product along with its transactions and favorites
// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"), "product ID")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.productService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}

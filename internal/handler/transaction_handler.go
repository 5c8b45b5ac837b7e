package handler

import (
	"wearspace-api/internal/apperr"
	"wearspace-api/internal/middleware"
	"wearspace-api/internal/model"
	"wearspace-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	transactionService service.TransactionService
}

func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// UpdateStatusRequest carries the only mutable transaction field.
type UpdateStatusRequest struct {
	TransactionStatus *string `json:"transaction_status"`
}

// CreateTransaction handles checkout; guests are allowed
// POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req service.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	transaction, err := h.transactionService.Create(&req, middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(transaction)
}

// GET /api/transactions
func (h *TransactionHandler) GetAllTransactions(c *fiber.Ctx) error {
	transactions, err := h.transactionService.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transactions)
}

// GET /api/transactions/:id
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"), "transaction ID")
	if err != nil {
		return respondError(c, err)
	}

	transaction, err := h.transactionService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transaction)
}

// UpdateTransaction changes the transaction status only
// PUT /api/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"), "transaction ID")
	if err != nil {
		return respondError(c, err)
	}

	var req UpdateStatusRequest
	if err := decodeStrict(c, &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.TransactionStatus == nil {
		return respondError(c, apperr.MissingFields([]string{"transaction_status"}))
	}

	transaction, err := h.transactionService.UpdateStatus(id, model.TransactionStatus(*req.TransactionStatus))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transaction)
}

// DELETE /api/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"), "transaction ID")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.transactionService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}

package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"

	"wearspace-api/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondError maps a classified error to its status; anything
// unclassified is logged and hidden behind a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.HTTPStatus()).JSON(fiber.Map{"error": appErr.Message})
	}

	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}

func parseUUID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.MalformedID(what)
	}
	return id, nil
}

// decodeStrict parses the request body and rejects unknown keys, so a
// typoed field in a partial update fails loudly instead of being ignored.
func decodeStrict(c *fiber.Ctx, dest interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

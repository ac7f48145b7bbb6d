package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dnavault.com/internal/domain"
)

// Envelope is the stable response shape shared by success and error
// responses.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// handleError translates a service error into its HTTP response. AppError
// carries the status code; anything else is an unclassified 500. Messages
// never include credential material.
func handleError(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Code).JSON(Envelope{Success: false, Message: appErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(Envelope{Success: false, Message: "internal error"})
}

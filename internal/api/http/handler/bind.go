package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/internkaksha/internkaksha-server/internal/apierrors"
)

type validatable interface {
	Validate() error
}

// bind decodes the request body into req and validates it.
func bind(c *fiber.Ctx, req validatable) error {
	if err := c.BodyParser(req); err != nil {
		return apierrors.NewErrInvalidPayload()
	}
	if err := req.Validate(); err != nil {
		return apierrors.NewErrValidation(err.Error(), err)
	}
	return nil
}

// MessageResponse is a body carrying a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

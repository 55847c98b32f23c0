package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/internkaksha/internkaksha-server/internal/apierrors"
	"github.com/internkaksha/internkaksha-server/internal/logger"
)

const (
	msgSomethingWentWrong = "Something went wrong!"
	msgInternalError      = "Internal server error"
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewErrorHandler maps errors returned by handlers to JSON responses.
// Internal error details are exposed only when development is true.
func NewErrorHandler(development bool, logger *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if apiErr, ok := apierrors.As(err); ok {
			resp := ErrorResponse{Message: apiErr.Message}
			if apiErr.Kind == apierrors.KindInternal {
				logger.Error("internal error",
					"path", c.Path(),
					"error", err.Error())
				resp.Error = internalDetail(development, apiErr.Err)
			}
			return c.Status(apiErr.HTTPCode).JSON(resp)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(ErrorResponse{Message: fiberErr.Message})
		}

		logger.Error("unhandled error",
			"path", c.Path(),
			"error", err.Error())

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: msgSomethingWentWrong,
			Error:   internalDetail(development, err),
		})
	}
}

func internalDetail(development bool, err error) string {
	if !development {
		return msgInternalError
	}
	if err == nil {
		return msgInternalError
	}
	return err.Error()
}

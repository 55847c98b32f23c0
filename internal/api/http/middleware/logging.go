package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/internkaksha/internkaksha-server/internal/logger"
)

// Logging logs every HTTP request with its status and duration.
type Logging struct {
	logger *logger.Logger
}

func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle runs the rest of the chain and logs the outcome.
// Chain errors are rendered here so the logged status matches the response.
func (l *Logging) Handle(c *fiber.Ctx) error {
	start := time.Now()

	err := c.Next()
	if err != nil {
		if herr := c.App().ErrorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	status := c.Response().StatusCode()
	attrs := []any{
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}

	switch {
	case status >= fiber.StatusInternalServerError:
		if err != nil {
			attrs = append(attrs, "error", err.Error())
		}
		l.logger.Error("HTTP request failed", attrs...)
	default:
		l.logger.Info("HTTP request completed", attrs...)
	}

	return nil
}

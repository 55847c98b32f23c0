package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/internkaksha/internkaksha-server/internal/apierrors"
	"github.com/internkaksha/internkaksha-server/internal/logger"
	"github.com/internkaksha/internkaksha-server/internal/model"
)

// Pinger checks that the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// DatabaseStatusResponse is the body of GET /api/test-db.
type DatabaseStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// System serves the unauthenticated operational endpoints and the dashboard greeting.
type System struct {
	pinger         Pinger
	contextManager model.ContextManager
	environment    string
	development    bool
	now            func() time.Time
	logger         *logger.Logger
}

func NewSystem(pinger Pinger, contextManager model.ContextManager, environment string, development bool, logger *logger.Logger) *System {
	return &System{
		pinger:         pinger,
		contextManager: contextManager,
		environment:    environment,
		development:    development,
		now:            time.Now,
		logger:         logger,
	}
}

func (h *System) Root(c *fiber.Ctx) error {
	return c.JSON(MessageResponse{Message: "Welcome to the InternKaksha API!"})
}

func (h *System) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:      "OK",
		Message:     "InternKaksha API is running!",
		Timestamp:   h.now().UTC().Format(time.RFC3339),
		Environment: h.environment,
	})
}

func (h *System) TestDB(c *fiber.Ctx) error {
	if err := h.pinger.Ping(c.UserContext()); err != nil {
		h.logger.Error("database ping failed",
			"error", err.Error())

		resp := DatabaseStatusResponse{Status: "ERROR", Message: "Database connection failed"}
		if h.development {
			resp.Error = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}

	return c.JSON(DatabaseStatusResponse{Status: "OK", Message: "Database connection successful!"})
}

// Dashboard greets the authenticated user by name.
func (h *System) Dashboard(c *fiber.Ctx) error {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return apierrors.NewErrMissingAuthorizationToken()
	}

	return c.JSON(MessageResponse{Message: fmt.Sprintf("Hello %s, Welcome to dashboard.", user.Name)})
}

// NotFound answers requests that matched no route.
func (h *System) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Route not found",
		"path":    c.OriginalURL(),
	})
}

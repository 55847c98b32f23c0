package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/internkaksha/internkaksha-server/internal/apierrors"
	"github.com/internkaksha/internkaksha-server/internal/logger"
	"github.com/internkaksha/internkaksha-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.Session, error)
	Login(ctx context.Context, email, password string) (model.Session, error)
}

// Auth handles the /api/auth endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates an account and responds with the user and a token.
func (h *Auth) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	session, err := h.authService.Register(c.UserContext(), req.params())
	if err != nil {
		h.logger.Debug("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		return err
	}

	h.logger.Info("Auth handler: registration completed",
		"user_id", session.User.ID)

	return c.Status(fiber.StatusCreated).JSON(session)
}

// Login exchanges credentials for the user and a token.
func (h *Auth) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	session, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return err
	}

	return c.JSON(session)
}

// VerifyResponse is the body of GET /api/auth/verify.
type VerifyResponse struct {
	User model.User `json:"user"`
}

// Verify returns the user behind the presented token.
func (h *Auth) Verify(c *fiber.Ctx) error {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return apierrors.NewErrMissingAuthorizationToken()
	}

	return c.JSON(VerifyResponse{User: user})
}

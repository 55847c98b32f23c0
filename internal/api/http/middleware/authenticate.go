package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/internkaksha/internkaksha-server/internal/logger"
	"github.com/internkaksha/internkaksha-server/internal/model"
)

const bearerPrefix = "Bearer "

// SessionResolver turns a bearer token into the current stored user.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (model.User, error)
}

// Authenticate resolves the bearer token and injects the user into the request context.
type Authenticate struct {
	resolver       SessionResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver SessionResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, contextManager: contextManager, logger: logger}
}

// Handle rejects the request unless it carries a token for an existing user.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	token := bearerToken(c.Get(fiber.HeaderAuthorization))

	user, err := m.resolver.ResolveSession(c.UserContext(), token)
	if err != nil {
		m.logger.Debug("authentication failed",
			"path", c.Path(),
			"error", err.Error())
		return err
	}

	c.SetUserContext(m.contextManager.SetUserToContext(c.UserContext(), user))
	return c.Next()
}

func bearerToken(header string) string {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

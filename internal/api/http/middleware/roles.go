package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/internkaksha/internkaksha-server/internal/apierrors"
	"github.com/internkaksha/internkaksha-server/internal/model"
)

// RequireRoles admits only users whose role is one of roles, compared case-insensitively.
// It must run after Authenticate.
func RequireRoles(contextManager model.ContextManager, roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := contextManager.GetUserFromContext(c.UserContext())
		if !ok || !user.Role.In(roles...) {
			return apierrors.NewErrInsufficientRole()
		}
		return c.Next()
	}
}

package context

import (
	"context"

	"github.com/internkaksha/internkaksha-server/internal/model"
)

type userKey struct{}

// Manager stores the resolved user in a request context.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a copy of ctx carrying user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the user set by SetUserToContext.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	return user, ok
}

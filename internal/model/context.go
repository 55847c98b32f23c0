package model

import (
	"context"
)

// ContextManager attaches the acting user to a request context.
type ContextManager interface {
	SetUserToContext(ctx context.Context, user User) context.Context
	GetUserFromContext(ctx context.Context) (User, bool)
}

package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/internkaksha/internkaksha-server/internal/model"
)

func TestManager_SetAndGetUser(t *testing.T) {
	m := NewManager()
	user := model.User{ID: uuid.New(), Name: "Ann", Role: model.RoleAdmin}
	ctx := m.SetUserToContext(stdctx.Background(), user)

	got, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestManager_GetUser_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetUserFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_SetUser_Overrides(t *testing.T) {
	m := NewManager()
	first := model.User{ID: uuid.New()}
	second := model.User{ID: uuid.New()}

	ctx := m.SetUserToContext(m.SetUserToContext(stdctx.Background(), first), second)
	got, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, second.ID, got.ID)
}

type foreignKey struct{}

func TestManager_ForeignValueIgnored(t *testing.T) {
	m := NewManager()
	ctx := stdctx.WithValue(stdctx.Background(), foreignKey{}, model.User{ID: uuid.New()})
	_, ok := m.GetUserFromContext(ctx)
	assert.False(t, ok)
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servermocks "github.com/internkaksha/internkaksha-server/internal/mocks"
	"github.com/internkaksha/internkaksha-server/internal/testutil"
	"github.com/internkaksha/internkaksha-server/internal/token"
)

func TestTokenService_Issue(t *testing.T) {
	userID := uuid.New()

	manager := servermocks.NewTokenManager(t)
	manager.On("GenerateAccessToken", userID).Return("access", nil).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())

	access, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.Equal(t, "access", access)
}

func TestTokenService_Issue_ManagerError(t *testing.T) {
	userID := uuid.New()

	manager := servermocks.NewTokenManager(t)
	manager.On("GenerateAccessToken", userID).Return("", assert.AnError).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())

	_, err := svc.Issue(userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_GetUserID(t *testing.T) {
	userID := uuid.New()

	manager := servermocks.NewTokenManager(t)
	manager.On("ParseAccessToken", "tok").Return(userID, nil).Once()
	manager.On("ParseAccessToken", "bad").Return(uuid.Nil, token.ErrTokenInvalid).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())

	got, err := svc.GetUserID(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = svc.GetUserID(context.Background(), "bad")
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestTokenService_WithJWT(t *testing.T) {
	svc := NewTokenService(token.NewJWT("secret", 0), testutil.MakeNoopLogger())
	userID := uuid.New()

	tok, err := svc.Issue(userID)
	require.NoError(t, err)

	got, err := svc.GetUserID(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

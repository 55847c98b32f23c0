package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Codes(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		wantKind Kind
		wantCode int
	}{
		{"validation", NewErrValidation("bad", nil), KindValidation, http.StatusBadRequest},
		{"payload", NewErrInvalidPayload(), KindValidation, http.StatusBadRequest},
		{"duplicate email", NewErrEmailIsTaken(), KindDuplicateEmail, http.StatusBadRequest},
		{"user not found", NewErrUserNotFound(), KindNotFound, http.StatusNotFound},
		{"invalid credentials", NewErrInvalidCredentials(), KindInvalidCredentials, http.StatusUnauthorized},
		{"missing token", NewErrMissingAuthorizationToken(), KindUnauthenticated, http.StatusUnauthorized},
		{"invalid token", NewErrInvalidAuthorizationToken(nil), KindUnauthenticated, http.StatusUnauthorized},
		{"session user gone", NewErrSessionUserNotFound(), KindUnauthenticated, http.StatusUnauthorized},
		{"role", NewErrInsufficientRole(), KindForbidden, http.StatusForbidden},
		{"ownership", NewErrForbidden("no"), KindForbidden, http.StatusForbidden},
		{"task not found", NewErrTaskNotFound(), KindNotFound, http.StatusNotFound},
		{"resume not found", NewErrResumeNotFound(), KindNotFound, http.StatusNotFound},
		{"internal", NewErrInternalServerError(errors.New("db down")), KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.Equal(t, tt.wantCode, tt.err.HTTPCode)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	cause := errors.New("db down")
	err := fmt.Errorf("failed to list: %w", NewErrInternalServerError(cause))

	apiErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "Server error", apiErr.Message)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "db down")
	assert.True(t, IsKind(err, KindInternal))
	assert.False(t, IsKind(err, KindForbidden))
}

func TestAs_PlainError(t *testing.T) {
	_, ok := As(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsKind(nil, KindNotFound))
}

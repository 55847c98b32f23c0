package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)
	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_Claims(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	j := NewJWT("secret", 2*time.Hour)
	j.now = func() time.Time { return fixed }
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(access, claims)
	require.NoError(t, err)

	assert.Equal(t, u.String(), claims.Subject)
	assert.Equal(t, u, claims.UserID)
	assert.Equal(t, typeAccess, claims.TokenType)
	assert.Equal(t, fixed.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixed.Add(2*time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestJWT_ExpiryValidation(t *testing.T) {
	issuedAt := time.Now()
	j := NewJWT("secret", time.Hour)
	j.now = func() time.Time { return issuedAt }
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)

	j.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = j.ParseAccessToken(access)
	require.NoError(t, err)

	j.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	_, err = j.ParseAccessToken(access)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWT_DifferentSecret(t *testing.T) {
	issuer := NewJWT("secret-one", time.Hour)
	verifier := NewJWT("secret-two", time.Hour)

	access, err := issuer.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ParseAccessToken(access)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWT_Tampered(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	access, err := j.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	parts := strings.Split(access, ".")
	require.Len(t, parts, 3)

	forged, err := NewJWT("secret", time.Hour).GenerateAccessToken(uuid.New())
	require.NoError(t, err)
	forgedParts := strings.Split(forged, ".")

	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]
	_, err = j.ParseAccessToken(tampered)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWT_RejectsForeignTokens(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	u := uuid.New()

	sign := func(method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{name: "none algorithm", token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"sub": u.String(), "typ": "access", "exp": exp})},
		{name: "wrong type", token: sign(jwt.SigningMethodHS256, []byte("secret"), jwt.MapClaims{"sub": u.String(), "typ": "refresh", "exp": exp})},
		{name: "missing expiry", token: sign(jwt.SigningMethodHS256, []byte("secret"), jwt.MapClaims{"sub": u.String(), "typ": "access"})},
		{name: "bad subject", token: sign(jwt.SigningMethodHS256, []byte("secret"), jwt.MapClaims{"sub": "42", "typ": "access", "exp": exp})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := j.ParseAccessToken(tt.token)
			require.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestNewJWT_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewJWT("secret", 0).ttl)
}

package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/internkaksha/internkaksha-server/internal/api/http/context"
	"github.com/internkaksha/internkaksha-server/internal/model"
	"github.com/internkaksha/internkaksha-server/internal/password"
	"github.com/internkaksha/internkaksha-server/internal/service"
	"github.com/internkaksha/internkaksha-server/internal/testutil"
	"github.com/internkaksha/internkaksha-server/internal/token"
)

func newAuthHandler(ctxMgr *httpctx.Manager) *Auth {
	logger := testutil.MakeNoopLogger()
	authService := service.NewAuth(
		testutil.NewUserStore(),
		password.NewBcrypt(4),
		token.NewJWT("handler-test-secret", time.Hour),
		logger,
	)
	return NewAuth(authService, ctxMgr, logger)
}

func TestAuth_Register(t *testing.T) {
	ctxMgr := httpctx.NewManager()
	h := newAuthHandler(ctxMgr)
	app := newTestApp(ctxMgr, nil)
	app.Post("/register", h.Register)

	t.Run("success defaults to intern", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/register", map[string]any{
			"name":       "Ann",
			"email":      "ann@example.com",
			"password":   "secret",
			"department": "Engineering",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		session := decode[model.Session](t, resp)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, "ann@example.com", session.User.Email)
		assert.Equal(t, model.RoleIntern, session.User.Role)
		require.NotNil(t, session.User.Department)
		assert.Equal(t, "Engineering", *session.User.Department)
	})

	t.Run("lower-case admin role", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/register", map[string]any{
			"name":     "Bob",
			"email":    "bob@example.com",
			"password": "secret",
			"role":     "admin",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, model.RoleAdmin, decode[model.Session](t, resp).User.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/register", map[string]any{
			"name":     "Ann Again",
			"email":    "ann@example.com",
			"password": "other",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Email already registered", decode[ErrorResponse](t, resp).Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/register", map[string]any{"email": "x@example.com"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/register", "{not json")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid request payload", decode[ErrorResponse](t, resp).Message)
	})
}

func TestAuth_Login(t *testing.T) {
	ctxMgr := httpctx.NewManager()
	h := newAuthHandler(ctxMgr)
	app := newTestApp(ctxMgr, nil)
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)

	resp := doJSON(t, app, http.MethodPost, "/register", map[string]any{
		"name":     "Ann",
		"email":    "ann@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
		wantMsg    string
	}{
		{name: "success", email: "ann@example.com", password: "secret", wantStatus: http.StatusOK},
		{name: "wrong password", email: "ann@example.com", password: "nope", wantStatus: http.StatusUnauthorized, wantMsg: "Invalid credentials"},
		{name: "unknown email", email: "who@example.com", password: "secret", wantStatus: http.StatusNotFound, wantMsg: "User not found"},
		{name: "blank password", email: "ann@example.com", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/login", map[string]any{
				"email":    tt.email,
				"password": tt.password,
			})
			require.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == http.StatusOK {
				session := decode[model.Session](t, resp)
				assert.NotEmpty(t, session.Token)
				assert.Equal(t, "Ann", session.User.Name)
				return
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decode[ErrorResponse](t, resp).Message)
			}
		})
	}
}

func TestAuth_Verify(t *testing.T) {
	ctxMgr := httpctx.NewManager()
	h := newAuthHandler(ctxMgr)

	t.Run("returns context user", func(t *testing.T) {
		user := model.User{Name: "Ann", Email: "ann@example.com", Role: model.RoleAdmin}
		app := newTestApp(ctxMgr, &user)
		app.Get("/verify", h.Verify)

		resp := doJSON(t, app, http.MethodGet, "/verify", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decode[VerifyResponse](t, resp)
		assert.Equal(t, "ann@example.com", got.User.Email)
		assert.Equal(t, model.RoleAdmin, got.User.Role)
	})

	t.Run("no user", func(t *testing.T) {
		app := newTestApp(ctxMgr, nil)
		app.Get("/verify", h.Verify)

		resp := doJSON(t, app, http.MethodGet, "/verify", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

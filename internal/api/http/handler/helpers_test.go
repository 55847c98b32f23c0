package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	httpctx "github.com/internkaksha/internkaksha-server/internal/api/http/context"
	"github.com/internkaksha/internkaksha-server/internal/model"
	"github.com/internkaksha/internkaksha-server/internal/testutil"
)

// newTestApp returns an app whose requests run as user when user is non-nil.
func newTestApp(ctxMgr *httpctx.Manager, user *model.User) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(true, testutil.MakeNoopLogger())})
	if user != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.SetUserContext(ctxMgr.SetUserToContext(c.UserContext(), *user))
			return c.Next()
		})
	}
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

package server

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/internkaksha/internkaksha-server/internal/model"
)

var _ model.Server = (*HTTPServer)(nil)

// HTTPServer wraps a fiber application with address and lifecycle methods.
type HTTPServer struct {
	app  *fiber.App
	addr string
}

// NewHTTPServer creates an HTTPServer with given application and address.
func NewHTTPServer(app *fiber.App, addr string) *HTTPServer {
	return &HTTPServer{app: app, addr: addr}
}

// Start serves on the configured address using the provided security layer.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.app.Listener(listener)
}

// Stop waits for in-flight requests until ctx expires.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.addr
}

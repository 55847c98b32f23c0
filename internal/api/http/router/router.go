package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/internkaksha/internkaksha-server/internal/api/http/handler"
	"github.com/internkaksha/internkaksha-server/internal/api/http/middleware"
	"github.com/internkaksha/internkaksha-server/internal/logger"
	"github.com/internkaksha/internkaksha-server/internal/model"
	"github.com/internkaksha/internkaksha-server/internal/service"
)

// Options configures the HTTP surface.
type Options struct {
	Environment    string
	Development    bool
	CORSOrigin     string
	BodyLimitBytes int
}

// Router builds the fiber application for the InternKaksha API.
type Router struct {
	authService    *service.Auth
	taskService    *service.Task
	resumeService  *service.Resume
	pinger         handler.Pinger
	contextManager model.ContextManager
	opts           Options
	logger         *logger.Logger
}

func New(
	authService *service.Auth,
	taskService *service.Task,
	resumeService *service.Resume,
	pinger handler.Pinger,
	contextManager model.ContextManager,
	opts Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		taskService:    taskService,
		resumeService:  resumeService,
		pinger:         pinger,
		contextManager: contextManager,
		opts:           opts,
		logger:         logger,
	}
}

// Register creates the application with all middleware and routes.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "internkaksha",
		BodyLimit:             r.opts.BodyLimitBytes,
		DisableStartupMessage: true,
		ErrorHandler:          handler.NewErrorHandler(r.opts.Development, r.logger),
	})

	app.Use(recover.New())
	app.Use(middleware.NewLogging(r.logger).Handle)
	app.Use(helmet.New())
	// fiber rejects credentials combined with a wildcard origin.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     r.opts.CORSOrigin,
		AllowCredentials: r.opts.CORSOrigin != "" && r.opts.CORSOrigin != "*",
	}))

	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger).Handle
	adminOnly := middleware.RequireRoles(r.contextManager, model.RoleAdmin)

	system := handler.NewSystem(r.pinger, r.contextManager, r.opts.Environment, r.opts.Development, r.logger)
	app.Get("/", system.Root)
	app.Get("/api/health", system.Health)
	app.Get("/api/test-db", system.TestDB)
	app.Get("/dashboard", authenticate, system.Dashboard)

	r.registerAuthRoutes(app.Group("/api/auth"), authenticate)
	r.registerTaskRoutes(app.Group("/api/tasks"), authenticate, adminOnly)
	r.registerResumeRoutes(app.Group("/api/profile"), authenticate)

	app.Use(system.NotFound)

	return app
}

func (r *Router) registerAuthRoutes(group fiber.Router, authenticate fiber.Handler) {
	h := handler.NewAuth(r.authService, r.contextManager, r.logger)

	group.Post("/register", h.Register)
	group.Post("/login", h.Login)
	group.Get("/verify", authenticate, h.Verify)
}

// Guards are attached per route so unknown paths under the prefix reach the 404 handler.
func (r *Router) registerTaskRoutes(group fiber.Router, authenticate, adminOnly fiber.Handler) {
	h := handler.NewTask(r.taskService, r.contextManager, r.logger)

	group.Get("/", authenticate, h.List)
	group.Post("/", authenticate, adminOnly, h.Create)
	group.Put("/:id", authenticate, adminOnly, h.Update)
	group.Delete("/:id", authenticate, adminOnly, h.Delete)
}

func (r *Router) registerResumeRoutes(group fiber.Router, authenticate fiber.Handler) {
	h := handler.NewResume(r.resumeService, r.contextManager, r.logger)

	group.Put("/resume", authenticate, h.Upload)
	group.Get("/resume", authenticate, h.Download)
	group.Delete("/resume", authenticate, h.Delete)
}

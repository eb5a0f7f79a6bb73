package server

import (
	"context"
	"strings"

	"swadesh-ai-be/internal/bootstrap"
	"swadesh-ai-be/internal/config"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// RouteRegistrar is implemented by every controller.
type RouteRegistrar interface {
	RegisterRoutes(r fiber.Router)
}

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := NewApp(cfg, container.Logger, container.IdentityResolver,
		container.HealthController,
		container.AuthController,
		container.UserController,
		container.MemoryController,
		container.ChatController,
		container.ToolController,
	)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

// NewApp builds the Fiber app: CORS, tracing and request logging, with
// lazy identity resolution in front of every route under /api.
func NewApp(cfg *config.Config, log logger.ILogger, resolver serverutils.IdentityResolver, controllers ...RouteRegistrar) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               config.AppName,
		BodyLimit:             10 * 1024 * 1024, // base64 images
		ErrorHandler:          serverutils.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	origins := strings.TrimSpace(cfg.App.CorsAllowedOrigins)
	// Browsers refuse credentialed requests to a wildcard origin and cors.New panics on it.
	allowCredentials := origins != "*"
	if !allowCredentials {
		log.Warn("SERVER", "CORS_ALLOWED_ORIGINS is *, cookies will not be sent cross-origin", nil)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: allowCredentials,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, " + serverutils.GuestModeHeader,
		AllowMethods:     "GET, POST, PATCH, DELETE, OPTIONS",
	}))

	app.Use(otelfiber.Middleware())
	app.Use(serverutils.RequestLogger(log))

	api := app.Group("/api")
	api.Use(serverutils.IdentityMiddleware(resolver))
	for _, c := range controllers {
		c.RegisterRoutes(api)
	}

	return app
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("SERVER", "Server is running", map[string]interface{}{
		"address": "http://localhost:" + s.cfg.App.Port,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smartcity/erbil-dashboard/internal/config"
	"github.com/smartcity/erbil-dashboard/internal/service"
)

// NewApp creates the fiber app with the standard middleware stack.
// Production suppresses the startup banner.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Erbil Urban Analysis Dashboard v1.0",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	return app
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, mapSvc *service.MapService, animation *service.AnimationLoader) {
	handler := NewHandler(mapSvc, animation)

	// Health check and metrics
	app.Get("/health", handler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Get("/catalog", handler.GetCatalog)

		// Map endpoints
		api.Get("/map", handler.GetMap)
		api.Post("/map", handler.PostMap)
		api.Get("/map/geojson", handler.GetMapGeoJSON)

		// Loading animation (proxied so the UI never fails on it)
		api.Get("/animation", handler.GetAnimation)
	}
}

// ErrorHandler renders errors as the API's JSON envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

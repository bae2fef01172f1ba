package router

import (
	"strings"

	"leadpath/internal/config"
	"leadpath/internal/handler"
	"leadpath/internal/middleware"
	"leadpath/internal/monitoring"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const bodyLimit = 1 * 1024 * 1024

// Handlers groups everything the router mounts.
type Handlers struct {
	Catalog        *handler.CatalogHandler
	Recommendation *handler.RecommendationHandler
	Onboarding     *handler.OnboardingHandler
	Quiz           *handler.QuizHandler
	Health         *handler.HealthHandler
}

// New builds the Fiber app with middleware and every route registered.
func New(cfg config.ServerConfig, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BodyLimit:    bodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	monitoring.Init()

	// Metrics resolves handler errors, so it must sit inside the request logger.
	app.Use(middleware.RequestLogger())
	app.Use(monitoring.MetricsMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins(cfg.AllowOrigins),
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/health", h.Health.Health)
	app.Get("/metrics", monitoring.PrometheusHandler())
	app.Get("/swagger/*", swagger.HandlerDefault)

	vm := middleware.NewValidationMiddleware()
	api := app.Group("/api")

	api.Get("/roles", h.Catalog.GetRoles)
	api.Get("/goals", h.Catalog.GetGoals)
	api.Get("/paths", vm.ValidatePathFilter(), h.Catalog.GetPaths)
	api.Get("/paths/:id", vm.ValidatePathID(), h.Catalog.GetPath)

	api.Post("/recommendations", h.Recommendation.Recommend)

	onboarding := api.Group("/onboarding")
	onboarding.Post("/complete", h.Onboarding.Complete)
	onboarding.Post("/password-strength", h.Onboarding.PasswordStrength)
	onboarding.Get("/time-commitments", h.Onboarding.TimeCommitments)

	quiz := api.Group("/quiz")
	quiz.Post("/results", h.Quiz.SubmitResult)
	quiz.Get("/results/:id", h.Quiz.GetResult)
	quiz.Delete("/results/:id", h.Quiz.DismissResult)

	return app
}

func allowOrigins(s string) string {
	if strings.TrimSpace(s) == "" {
		return "*"
	}
	return s
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Metrics    *handlers.MetricsHandler
	Auth       *handlers.AuthHandler
	Tickets    *handlers.TicketsHandler
	Meta       *handlers.MetaHandler
	AdminGuard fiber.Handler
}

// RegisterRoutes wires HTTP routes. Ticket submission, the option catalogs,
// and the auth surface are public; listing, editing, deleting, and the CSV
// report sit behind the admin session guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Snapshot)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/check", cfg.Auth.Check)

	api.Get("/meta/options", cfg.Meta.Options)

	tickets := api.Group("/tickets")
	tickets.Post("/", cfg.Tickets.Create)

	admin := tickets.Group("", cfg.AdminGuard)
	admin.Get("/", cfg.Tickets.List)
	admin.Get("/report", cfg.Tickets.Report)
	admin.Patch("/:id", cfg.Tickets.Update)
	admin.Delete("/:id", cfg.Tickets.Delete)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/saas-platform/internal/api/http/handlers"
	"github.com/spec-kit/saas-platform/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Hello          *handlers.HelloHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Customers      *handlers.CustomersHandler
	Subscriptions  *handlers.SubscriptionsHandler
	Support        *handlers.SupportHandler
	FAQs           *handlers.FAQsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Health probes live outside the gated
// group; everything under /api passes through the auth gate, which skips
// the configured exempt prefixes (auth endpoints, /api/hello).
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api", cfg.AuthMiddleware.Handle)

	api.Get("/hello", cfg.Hello.Hello)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	api.Get("/users", cfg.Users.Get)
	api.Put("/users", cfg.Users.Update)
	api.Delete("/users", cfg.Users.Delete)

	api.Get("/customers", cfg.Customers.List)
	api.Post("/customers", cfg.Customers.Create)
	api.Put("/customers", cfg.Customers.Update)
	api.Delete("/customers", cfg.Customers.Delete)

	api.Get("/subscriptions", cfg.Subscriptions.Get)
	api.Put("/subscriptions", cfg.Subscriptions.Update)
	api.Post("/subscriptions", cfg.Subscriptions.List)

	api.Get("/support", cfg.Support.Get)
	api.Post("/support", cfg.Support.Create)
	api.Put("/support", cfg.Support.Update)
	api.Delete("/support", cfg.Support.Delete)

	api.Get("/faqs", cfg.FAQs.Get)
	api.Post("/faqs", cfg.FAQs.Create)
	api.Put("/faqs", cfg.FAQs.Update)
	api.Delete("/faqs", cfg.FAQs.Delete)
}

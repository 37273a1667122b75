package setup

import (
	"time"

	"property-manager/app"
	"property-manager/handlers"
	"property-manager/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Public routes
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	// Auth routes
	fiberApp.Post("/api/auth/login", handlers.Login(application))
	fiberApp.Post("/api/auth/logout", handlers.Logout(application))
	fiberApp.Get("/api/auth/me", handlers.Me(application))

	// Protected API routes with a per-user rate limit
	api := fiberApp.Group("/api", middleware.AuthRequired(application.SessionStore), limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID, ok := c.Locals("userID").(string); ok {
				return "user:" + userID
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded for your account",
			})
		},
	}))

	api.Get("/units", handlers.ListUnits(application))
	api.Get("/units/hierarchy", handlers.UnitHierarchy(application))
	api.Post("/units", handlers.CreateUnit(application))
	api.Put("/units/:id", handlers.UpdateUnit(application))
	api.Delete("/units/:id", handlers.DeleteUnit(application))
	api.Get("/units/:id/children", handlers.ListChildren(application))

	api.Get("/tenants", handlers.ListTenants(application))
	api.Post("/tenants", handlers.CreateTenant(application))

	api.Get("/obligations", handlers.ListObligations(application))
	api.Post("/obligations", handlers.CreateObligation(application))
	api.Post("/obligations/:id/pay", handlers.PayObligation(application))
	api.Put("/obligations/:id/due-date", handlers.UpdateDueDate(application))

	api.Get("/payments", handlers.ListPayments(application))
	api.Post("/payments", handlers.CreatePayment(application))
	api.Get("/payments/stats", handlers.PaymentStats(application))

	api.Get("/expenses", handlers.ListExpenses(application))
	api.Post("/expenses", handlers.CreateExpense(application))
	api.Get("/expenses/totals", handlers.CategoryTotals(application))
	api.Get("/expenses/categories", handlers.ListCategories(application))
	api.Post("/expenses/categories", handlers.CreateCategory(application))
}

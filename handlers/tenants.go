package handlers

import (
	"errors"

	"property-manager/app"
	"property-manager/middleware"
	"property-manager/models"
	"property-manager/services"

	"github.com/gofiber/fiber/v2"
)

// ListTenants returns the user's tenants with unit names
func ListTenants(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		return success(c, fiber.Map{"tenants": a.TenantService.List(userID)})
	}
}

// CreateTenant creates a tenant and marks the owning unit as rented
func CreateTenant(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTenantRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationFailed(c, err)
		}

		userID := middleware.GetUserID(c)
		id, err := a.TenantService.Create(&req, userID)
		if errors.Is(err, services.ErrUnitNotFound) {
			return notFound(c, "Unit not found")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create tenant", err)
		}

		return created(c, fiber.Map{"id": id})
	}
}

package handlers

import (
	"strconv"

	"property-manager/app"
	"property-manager/middleware"
	"property-manager/models"

	"github.com/gofiber/fiber/v2"
)

// ListUnits returns the user's units, newest first
func ListUnits(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		return success(c, fiber.Map{"units": a.UnitService.List(userID)})
	}
}

// UnitHierarchy returns the units flattened depth-first with depth tags
func UnitHierarchy(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		return success(c, fiber.Map{"units": a.UnitService.Hierarchy(userID)})
	}
}

// CreateUnit creates a new unit
func CreateUnit(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateUnitRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationFailed(c, err)
		}

		userID := middleware.GetUserID(c)
		id, err := a.UnitService.Create(&req, userID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create unit", err)
		}

		return created(c, fiber.Map{"id": id})
	}
}

// UpdateUnit overwrites a unit's mutable fields
func UpdateUnit(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return badRequest(c, "Invalid unit id")
		}

		var req models.UpdateUnitRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationFailed(c, err)
		}

		userID := middleware.GetUserID(c)
		if err := a.UnitService.Update(id, &req, userID); err != nil {
			return serverErrorWithDetails(c, "Failed to update unit", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}

// DeleteUnit hard-deletes a unit
func DeleteUnit(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return badRequest(c, "Invalid unit id")
		}

		userID := middleware.GetUserID(c)
		if err := a.UnitService.Delete(id, userID); err != nil {
			return serverErrorWithDetails(c, "Failed to delete unit", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}

// ListChildren returns the units directly under a parent
func ListChildren(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return badRequest(c, "Invalid unit id")
		}

		userID := middleware.GetUserID(c)
		return success(c, fiber.Map{"units": a.UnitService.Children(parentID, userID)})
	}
}

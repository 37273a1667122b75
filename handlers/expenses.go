package handlers

import (
	"errors"

	"property-manager/app"
	"property-manager/middleware"
	"property-manager/models"
	"property-manager/services"

	"github.com/gofiber/fiber/v2"
)

// ListCategories returns the global expense categories
func ListCategories(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, fiber.Map{"categories": a.ExpenseService.Categories()})
	}
}

// CreateCategory adds an expense category
func CreateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationFailed(c, err)
		}

		id, err := a.ExpenseService.CreateCategory(&req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create category", err)
		}

		return created(c, fiber.Map{"id": id})
	}
}

// ListExpenses returns the user's expenses with category and unit names
func ListExpenses(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		return success(c, fiber.Map{"expenses": a.ExpenseService.List(userID)})
	}
}

// CreateExpense records an expense against a unit
func CreateExpense(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateExpenseRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationFailed(c, err)
		}

		userID := middleware.GetUserID(c)
		id, err := a.ExpenseService.Create(&req, userID)
		if errors.Is(err, services.ErrUnitNotFound) {
			return notFound(c, "Unit not found")
		}
		if errors.Is(err, services.ErrCategoryNotFound) {
			return notFound(c, "Expense category not found")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create expense", err)
		}

		return created(c, fiber.Map{"id": id})
	}
}

// CategoryTotals returns per-category expense sums over a date range
func CategoryTotals(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startDate, endDate := c.Query("start_date"), c.Query("end_date")
		if startDate == "" || endDate == "" {
			return badRequest(c, "start_date and end_date are required")
		}

		userID := middleware.GetUserID(c)
		return success(c, fiber.Map{"totals": a.ExpenseService.CategoryTotals(userID, startDate, endDate)})
	}
}

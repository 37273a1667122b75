package handlers

import (
	"errors"

	"property-manager/app"
	"property-manager/middleware"
	"property-manager/models"
	"property-manager/services"

	"github.com/gofiber/fiber/v2"
)

// ListPayments returns the user's payment ledger with unit and tenant names
func ListPayments(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		return success(c, fiber.Map{"payments": a.PaymentService.List(userID)})
	}
}

// CreatePayment appends a payment to the ledger
func CreatePayment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreatePaymentRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationFailed(c, err)
		}

		userID := middleware.GetUserID(c)
		id, err := a.PaymentService.Create(&req, userID)
		if errors.Is(err, services.ErrUnitNotFound) {
			return notFound(c, "Unit not found")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create payment", err)
		}

		return created(c, fiber.Map{"id": id})
	}
}

// PaymentStats returns total income and expenses for the dashboard
func PaymentStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		return success(c, fiber.Map{"stats": a.PaymentService.Stats(userID)})
	}
}

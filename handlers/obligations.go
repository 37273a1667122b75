package handlers

import (
	"errors"
	"strconv"

	"property-manager/app"
	"property-manager/middleware"
	"property-manager/models"
	"property-manager/services"

	"github.com/gofiber/fiber/v2"
)

// ListObligations returns the user's obligations, soonest due first, with
// derived overdue / due-soon flags
func ListObligations(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		return success(c, fiber.Map{"obligations": a.ObligationService.List(userID)})
	}
}

// CreateObligation creates a recurring obligation for a unit
func CreateObligation(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateObligationRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationFailed(c, err)
		}

		userID := middleware.GetUserID(c)
		id, err := a.ObligationService.Create(&req, userID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create obligation", err)
		}

		return created(c, fiber.Map{"id": id})
	}
}

// PayObligation records an outgoing payment and advances the due date
func PayObligation(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return badRequest(c, "Invalid obligation id")
		}

		userID := middleware.GetUserID(c)
		payment, err := a.ObligationService.Pay(id, userID)
		if errors.Is(err, services.ErrObligationNotFound) {
			return notFound(c, "Obligation not found")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to pay obligation", err)
		}

		return created(c, fiber.Map{"payment": payment})
	}
}

type updateDueDateRequest struct {
	NextDueDate string `json:"next_due_date" validate:"required,dateformat"`
}

// UpdateDueDate manually overrides an obligation's next due date
func UpdateDueDate(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return badRequest(c, "Invalid obligation id")
		}

		var req updateDueDateRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationFailed(c, err)
		}

		userID := middleware.GetUserID(c)
		err = a.ObligationService.SetNextDueDate(id, req.NextDueDate, userID)
		if errors.Is(err, services.ErrObligationNotFound) {
			return notFound(c, "Obligation not found")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to update due date", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}

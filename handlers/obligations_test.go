package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"property-manager/handlers"
	"property-manager/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayObligation(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()

	fiberApp := setupTestApp()
	fiberApp.Post("/api/obligations/:id/pay", handlers.PayObligation(application))

	unitID, err := application.Repo.CreateUnit(&models.CreateUnitRequest{
		UnitName: "Apartment 1",
		UnitType: "apartment",
	}, "test-user-id")
	require.NoError(t, err)

	obligationID, err := application.Repo.CreateObligation(&models.CreateObligationRequest{
		UnitID:         unitID,
		ObligationType: "mortgage",
		PayeeName:      "Housing Bank",
		Amount:         300,
		Frequency:      "monthly",
		StartDate:      "2024-01-01",
		NextDueDate:    "2024-03-31",
	}, "test-user-id")
	require.NoError(t, err)

	t.Run("Records the payment and advances the schedule", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/obligations/1/pay", nil)

		resp, err := fiberApp.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		payment := body["payment"].(map[string]interface{})
		assert.Equal(t, float64(300), payment["payment_amount"])
		assert.Equal(t, "outgoing", payment["payment_direction"])

		obligation, err := application.Repo.GetObligation(obligationID, "test-user-id")
		require.NoError(t, err)
		require.NotNil(t, obligation)
		// Month-end due dates clamp instead of spilling into the next month
		assert.Equal(t, "2024-04-30", obligation.NextDueDate)
	})

	t.Run("Unknown obligation", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/obligations/999/pay", nil)

		resp, err := fiberApp.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Bad obligation id", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/obligations/abc/pay", nil)

		resp, err := fiberApp.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateDueDate(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()

	fiberApp := setupTestApp()
	fiberApp.Put("/api/obligations/:id/due-date", handlers.UpdateDueDate(application))

	unitID, err := application.Repo.CreateUnit(&models.CreateUnitRequest{
		UnitName: "Apartment 1",
		UnitType: "apartment",
	}, "test-user-id")
	require.NoError(t, err)

	obligationID, err := application.Repo.CreateObligation(&models.CreateObligationRequest{
		UnitID:         unitID,
		ObligationType: "rent",
		PayeeName:      "Landlord",
		Amount:         100,
		Frequency:      "monthly",
		StartDate:      "2024-01-01",
		NextDueDate:    "2024-02-01",
	}, "test-user-id")
	require.NoError(t, err)

	t.Run("Overrides the next due date", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/obligations/1/due-date", fiber.Map{
			"next_due_date": "2024-03-15",
		})

		resp, err := fiberApp.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		obligation, err := application.Repo.GetObligation(obligationID, "test-user-id")
		require.NoError(t, err)
		require.NotNil(t, obligation)
		assert.Equal(t, "2024-03-15", obligation.NextDueDate)
	})

	t.Run("Rejects a bad date format", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/obligations/1/due-date", fiber.Map{
			"next_due_date": "15/03/2024",
		})

		resp, err := fiberApp.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown obligation", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/obligations/999/due-date", fiber.Map{
			"next_due_date": "2024-03-15",
		})

		resp, err := fiberApp.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestListObligations(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()

	fiberApp := setupTestApp()
	fiberApp.Get("/api/obligations", handlers.ListObligations(application))

	unitID, err := application.Repo.CreateUnit(&models.CreateUnitRequest{
		UnitName: "Apartment 1",
		UnitType: "apartment",
	}, "test-user-id")
	require.NoError(t, err)

	// Long overdue, so the derived flags are deterministic
	_, err = application.Repo.CreateObligation(&models.CreateObligationRequest{
		UnitID:         unitID,
		ObligationType: "rent",
		PayeeName:      "Landlord",
		Amount:         100,
		Frequency:      "monthly",
		StartDate:      "2020-01-01",
		NextDueDate:    "2020-02-01",
	}, "test-user-id")
	require.NoError(t, err)

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/api/obligations", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	obligations := body["obligations"].([]interface{})
	require.Len(t, obligations, 1)

	obligation := obligations[0].(map[string]interface{})
	assert.Equal(t, "Apartment 1", obligation["unit_name"])
	assert.Equal(t, true, obligation["is_overdue"])
	assert.Equal(t, true, obligation["is_due_soon"])
}

package validator

import (
	"testing"

	"property-manager/models"

	"github.com/stretchr/testify/assert"
)

func TestValidator_CreateUnit(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreateUnitRequest
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid unit request",
			req: models.CreateUnitRequest{
				UnitName: "Apartment 1",
				UnitType: "apartment",
			},
			wantError: false,
		},
		{
			name: "Missing name",
			req: models.CreateUnitRequest{
				UnitName: "",
				UnitType: "apartment",
			},
			wantError: true,
			errorMsg:  "unit_name is required",
		},
		{
			name: "Unknown unit type",
			req: models.CreateUnitRequest{
				UnitName: "Apartment 1",
				UnitType: "castle",
			},
			wantError: true,
			errorMsg:  "unit_type must be one of: apartment, building, floor, room, shop",
		},
		{
			name: "Unknown status",
			req: models.CreateUnitRequest{
				UnitName: "Apartment 1",
				UnitType: "apartment",
				Status:   "haunted",
			},
			wantError: true,
			errorMsg:  "status must be one of: vacant, rented, maintenance",
		},
		{
			name: "Empty status is valid",
			req: models.CreateUnitRequest{
				UnitName: "Apartment 1",
				UnitType: "building",
				Status:   "",
			},
			wantError: false,
		},
		{
			name: "Name too long",
			req: models.CreateUnitRequest{
				UnitName: string(make([]byte, 201)),
				UnitType: "apartment",
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_CreateObligation(t *testing.T) {
	v := New()

	valid := models.CreateObligationRequest{
		UnitID:         1,
		ObligationType: "mortgage",
		PayeeName:      "Housing Bank",
		Amount:         300,
		Frequency:      "monthly",
		StartDate:      "2024-01-01",
		NextDueDate:    "2024-02-01",
	}

	tests := []struct {
		name      string
		mutate    func(r *models.CreateObligationRequest)
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid obligation request",
			mutate:    func(r *models.CreateObligationRequest) {},
			wantError: false,
		},
		{
			name:      "Unknown obligation type",
			mutate:    func(r *models.CreateObligationRequest) { r.ObligationType = "tribute" },
			wantError: true,
			errorMsg:  "obligation_type must be one of: rent, installment, mortgage, association_fee, insurance",
		},
		{
			name:      "Unknown frequency",
			mutate:    func(r *models.CreateObligationRequest) { r.Frequency = "fortnightly" },
			wantError: true,
			errorMsg:  "frequency must be one of: monthly, quarterly, semi_annual, annual",
		},
		{
			name:      "Zero amount",
			mutate:    func(r *models.CreateObligationRequest) { r.Amount = 0 },
			wantError: true,
			errorMsg:  "amount is required",
		},
		{
			name:      "Bad next due date format",
			mutate:    func(r *models.CreateObligationRequest) { r.NextDueDate = "01/02/2024" },
			wantError: true,
			errorMsg:  "next_due_date must be in YYYY-MM-DD format",
		},
		{
			name:      "Missing unit",
			mutate:    func(r *models.CreateObligationRequest) { r.UnitID = 0 },
			wantError: true,
			errorMsg:  "unit_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := v.Validate(&req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_CreatePayment(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreatePaymentRequest
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid payment request",
			req: models.CreatePaymentRequest{
				UnitID:           1,
				PaymentAmount:    100,
				PaymentDate:      "2024-01-05",
				PaymentDirection: "incoming",
			},
			wantError: false,
		},
		{
			name: "Unknown direction",
			req: models.CreatePaymentRequest{
				UnitID:           1,
				PaymentAmount:    100,
				PaymentDate:      "2024-01-05",
				PaymentDirection: "sideways",
			},
			wantError: true,
			errorMsg:  "payment_direction must be either 'incoming' or 'outgoing'",
		},
		{
			name: "Bad date format",
			req: models.CreatePaymentRequest{
				UnitID:           1,
				PaymentAmount:    100,
				PaymentDate:      "Jan 5 2024",
				PaymentDirection: "outgoing",
			},
			wantError: true,
			errorMsg:  "payment_date must be in YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_CreateTenant(t *testing.T) {
	v := New()

	t.Run("Valid tenant request", func(t *testing.T) {
		err := v.Validate(&models.CreateTenantRequest{
			UnitID:     1,
			FullName:   "Sami Haddad",
			StartDate:  "2024-01-01",
			RentAmount: 500,
		})
		assert.NoError(t, err)
	})

	t.Run("Unknown status", func(t *testing.T) {
		err := v.Validate(&models.CreateTenantRequest{
			UnitID:     1,
			FullName:   "Sami Haddad",
			StartDate:  "2024-01-01",
			RentAmount: 500,
			Status:     "evicted",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status must be one of: active inactive ended")
	})
}

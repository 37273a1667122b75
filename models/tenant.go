package models

import "time"

// Tenant statuses
const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
	TenantStatusEnded    = "ended"
)

type Tenant struct {
	ID            int64     `json:"id"`
	UnitID        int64     `json:"unit_id"`
	FullName      string    `json:"full_name"`
	IDType        int       `json:"id_type"`
	NationalID    *string   `json:"national_id"`
	Phone         *string   `json:"phone"`
	StartDate     string    `json:"start_date"`
	EndDate       *string   `json:"end_date"`
	RentAmount    float64   `json:"rent_amount"`
	DepositAmount *float64  `json:"deposit_amount"`
	Status        string    `json:"status"`
	UnitName      string    `json:"unit_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateTenantRequest struct {
	UnitID        int64    `json:"unit_id" validate:"required,gt=0"`
	FullName      string   `json:"full_name" validate:"required,min=1,max=200"`
	IDType        int      `json:"id_type" validate:"gte=0"`
	NationalID    *string  `json:"national_id"`
	Phone         *string  `json:"phone"`
	StartDate     string   `json:"start_date" validate:"required,dateformat"`
	EndDate       *string  `json:"end_date" validate:"omitempty,dateformat"`
	RentAmount    float64  `json:"rent_amount" validate:"required,gt=0"`
	DepositAmount *float64 `json:"deposit_amount" validate:"omitempty,gte=0"`
	Status        string   `json:"status" validate:"omitempty,oneof=active inactive ended"`
}

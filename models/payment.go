package models

import "time"

// Payment directions
const (
	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"
)

// Payment is an append-only ledger entry. The application never updates or
// deletes payment rows.
type Payment struct {
	ID               int64     `json:"id"`
	UnitID           int64     `json:"unit_id"`
	PaymentAmount    float64   `json:"payment_amount"`
	PaymentDate      string    `json:"payment_date"`
	PaymentType      *string   `json:"payment_type"`
	PaymentMethod    *string   `json:"payment_method"`
	PaymentDirection string    `json:"payment_direction"`
	TenantID         *int64    `json:"tenant_id"`
	ObligationID     *int64    `json:"obligation_id"`
	PayerName        *string   `json:"payer_name"`
	PayeeName        *string   `json:"payee_name"`
	Notes            *string   `json:"notes"`
	UnitName         string    `json:"unit_name,omitempty"`
	TenantName       string    `json:"tenant_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreatePaymentRequest struct {
	UnitID           int64   `json:"unit_id" validate:"required,gt=0"`
	PaymentAmount    float64 `json:"payment_amount" validate:"required,gt=0"`
	PaymentDate      string  `json:"payment_date" validate:"required,dateformat"`
	PaymentType      *string `json:"payment_type"`
	PaymentMethod    *string `json:"payment_method"`
	PaymentDirection string  `json:"payment_direction" validate:"required,direction"`
	TenantID         *int64  `json:"tenant_id"`
	ObligationID     *int64  `json:"obligation_id"`
	PayerName        *string `json:"payer_name"`
	PayeeName        *string `json:"payee_name"`
	Notes            *string `json:"notes"`
}

// PaymentStats aggregates payment amounts by direction for one owner.
// Missing rows resolve to zero, never null.
type PaymentStats struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
}

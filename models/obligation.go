package models

import "time"

// Obligation types
const (
	ObligationTypeRent           = "rent"
	ObligationTypeInstallment    = "installment"
	ObligationTypeMortgage       = "mortgage"
	ObligationTypeAssociationFee = "association_fee"
	ObligationTypeInsurance      = "insurance"
)

// Payment frequencies
const (
	FrequencyMonthly    = "monthly"
	FrequencyQuarterly  = "quarterly"
	FrequencySemiAnnual = "semi_annual"
	FrequencyAnnual     = "annual"
)

// DueSoonWindow is how far ahead an obligation is flagged as due soon.
const DueSoonWindow = 7 * 24 * time.Hour

// Obligation is a recurring payable tied to a unit. Dates are stored as
// YYYY-MM-DD strings, matching the column format in the store.
type Obligation struct {
	ID             int64     `json:"id"`
	UnitID         int64     `json:"unit_id"`
	UserID         string    `json:"user_id"`
	ObligationType string    `json:"obligation_type"`
	PayeeName      string    `json:"payee_name"`
	PayeePhone     *string   `json:"payee_phone"`
	Amount         float64   `json:"amount"`
	Frequency      string    `json:"frequency"`
	StartDate      string    `json:"start_date"`
	EndDate        *string   `json:"end_date"`
	NextDueDate    string    `json:"next_due_date"`
	AutoReminder   bool      `json:"auto_reminder"`
	Status         string    `json:"status"`
	Notes          *string   `json:"notes"`
	UnitName       string    `json:"unit_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Overdue reports whether the obligation's next due date has passed.
// Derived on every read, never persisted.
func (o *Obligation) Overdue(now time.Time) bool {
	due, err := time.Parse("2006-01-02", o.NextDueDate)
	if err != nil {
		return false
	}
	return due.Before(now)
}

// DueSoon reports whether the next due date falls within the reminder window.
func (o *Obligation) DueSoon(now time.Time) bool {
	due, err := time.Parse("2006-01-02", o.NextDueDate)
	if err != nil {
		return false
	}
	return !due.After(now.Add(DueSoonWindow))
}

// ObligationView decorates an obligation with its derived schedule flags
// for list displays.
type ObligationView struct {
	Obligation
	IsOverdue bool `json:"is_overdue"`
	IsDueSoon bool `json:"is_due_soon"`
}

type CreateObligationRequest struct {
	UnitID         int64   `json:"unit_id" validate:"required,gt=0"`
	ObligationType string  `json:"obligation_type" validate:"required,obligationtype"`
	PayeeName      string  `json:"payee_name" validate:"required,min=1,max=200"`
	PayeePhone     *string `json:"payee_phone"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Frequency      string  `json:"frequency" validate:"required,frequency"`
	StartDate      string  `json:"start_date" validate:"required,dateformat"`
	EndDate        *string `json:"end_date" validate:"omitempty,dateformat"`
	NextDueDate    string  `json:"next_due_date" validate:"required,dateformat"`
	AutoReminder   bool    `json:"auto_reminder"`
	Notes          *string `json:"notes"`
}

// ObligationReminder is the contract handed to the notification scheduler:
// enough to schedule a reminder ahead of the next due date.
type ObligationReminder struct {
	ObligationID   int64   `json:"obligation_id"`
	UnitID         int64   `json:"unit_id"`
	UnitName       string  `json:"unit_name"`
	UserID         string  `json:"user_id"`
	ObligationType string  `json:"obligation_type"`
	PayeeName      string  `json:"payee_name"`
	Amount         float64 `json:"amount"`
	Frequency      string  `json:"frequency"`
	NextDueDate    string  `json:"next_due_date"`
}

package services

import (
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"property-manager/models"
)

// ObligationService handles the obligation lifecycle: listing with derived
// schedule flags, creation, and the pay-and-advance workflow.
type ObligationService struct {
	repo ObligationRepository
	now  Clock
}

func NewObligationService(repo ObligationRepository) *ObligationService {
	return &ObligationService{repo: repo, now: time.Now}
}

// NewObligationServiceWithClock is used by tests that pin "now".
func NewObligationServiceWithClock(repo ObligationRepository, now Clock) *ObligationService {
	return &ObligationService{repo: repo, now: now}
}

// List returns the user's obligations, soonest due first, each annotated
// with its derived overdue / due-soon flags. Failed reads degrade to an
// empty list.
func (os *ObligationService) List(userID string) []models.ObligationView {
	obligations, err := os.repo.ListObligations(userID)
	if err != nil {
		slog.Error("failed to list obligations", "user_id", userID, "error", err)
		return []models.ObligationView{}
	}

	now := os.now()
	views := make([]models.ObligationView, 0, len(obligations))
	for _, o := range obligations {
		views = append(views, models.ObligationView{
			Obligation: o,
			IsOverdue:  o.Overdue(now),
			IsDueSoon:  o.DueSoon(now),
		})
	}
	return views
}

func (os *ObligationService) Create(req *models.CreateObligationRequest, userID string) (int64, error) {
	return os.repo.CreateObligation(req, userID)
}

// SetNextDueDate manually overrides an obligation's next due date.
func (os *ObligationService) SetNextDueDate(id int64, nextDueDate, userID string) error {
	err := os.repo.UpdateNextDueDate(id, nextDueDate, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrObligationNotFound
	}
	return err
}

// Pay records an outgoing payment for the obligation and advances its next
// due date by exactly one frequency interval, computed from the stored due
// date rather than from today. Both writes happen in one transaction in the
// repository, so a payment cannot land without the schedule moving.
func (os *ObligationService) Pay(id int64, userID string) (*models.Payment, error) {
	obligation, err := os.repo.GetObligation(id, userID)
	if err != nil {
		return nil, err
	}
	if obligation == nil {
		return nil, ErrObligationNotFound
	}

	nextDue, err := NextDueDate(obligation.NextDueDate, obligation.Frequency)
	if err != nil {
		return nil, err
	}

	method := "bank"
	payment := &models.Payment{
		UnitID:           obligation.UnitID,
		PaymentAmount:    obligation.Amount,
		PaymentDate:      os.now().Format("2006-01-02"),
		PaymentType:      &obligation.ObligationType,
		PaymentMethod:    &method,
		PaymentDirection: models.DirectionOutgoing,
		ObligationID:     &obligation.ID,
		PayeeName:        &obligation.PayeeName,
	}

	paymentID, err := os.repo.PayObligation(payment, obligation.ID, nextDue, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrObligationNotFound
	}
	if err != nil {
		return nil, err
	}

	payment.ID = paymentID
	return payment, nil
}

// NextDueDate advances a YYYY-MM-DD date by one frequency interval using
// calendar-month arithmetic with end-of-month clamping, so Jan 31 + 1 month
// is Feb 28 (or Feb 29 in a leap year). Unknown frequencies fall back to one
// month.
func NextDueDate(current, frequency string) (string, error) {
	date, err := time.Parse("2006-01-02", current)
	if err != nil {
		return "", err
	}

	months := 1
	switch frequency {
	case models.FrequencyMonthly:
		months = 1
	case models.FrequencyQuarterly:
		months = 3
	case models.FrequencySemiAnnual:
		months = 6
	case models.FrequencyAnnual:
		months = 12
	}

	return addMonthsClamped(date, months).Format("2006-01-02"), nil
}

// addMonthsClamped adds whole months, clamping the day to the target month's
// length instead of letting the date normalize past it (time.AddDate would
// turn Jan 31 + 1 month into Mar 2/3).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)

	// Day 0 of the following month is the last day of this one.
	lastDay := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

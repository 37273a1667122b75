package services

import (
	"database/sql"
	"errors"
	"log/slog"

	"property-manager/models"
)

// PaymentService handles business logic for the payment ledger
type PaymentService struct {
	repo PaymentRepository
}

func NewPaymentService(repo PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

// List returns the user's payments, most recent first. Failed reads degrade
// to an empty list.
func (ps *PaymentService) List(userID string) []models.Payment {
	payments, err := ps.repo.ListPayments(userID)
	if err != nil {
		slog.Error("failed to list payments", "user_id", userID, "error", err)
		return []models.Payment{}
	}
	return payments
}

func (ps *PaymentService) Create(req *models.CreatePaymentRequest, userID string) (int64, error) {
	id, err := ps.repo.CreatePayment(req, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrUnitNotFound
	}
	return id, err
}

// Stats returns the income/expense totals for the dashboard. A failed read
// degrades to zeroed totals; the dashboard must never crash on a stats
// error.
func (ps *PaymentService) Stats(userID string) models.PaymentStats {
	stats, err := ps.repo.PaymentStats(userID)
	if err != nil {
		slog.Error("failed to compute payment stats", "user_id", userID, "error", err)
		return models.PaymentStats{}
	}
	return stats
}

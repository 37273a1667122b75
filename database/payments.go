package database

import (
	"database/sql"

	"property-manager/models"
)

// ListPayments returns the user's payments with unit and tenant names joined
// for display, most recent payment date first.
func (r *Repository) ListPayments(userID string) ([]models.Payment, error) {
	rows, err := r.db.Query(`
		SELECT p.id, p.unit_id, p.payment_amount, p.payment_date, p.payment_type,
		       p.payment_method, p.payment_direction, p.tenant_id, p.obligation_id,
		       p.payer_name, p.payee_name, p.notes,
		       u.unit_name, t.full_name, p.created_at
		FROM payments p
		LEFT JOIN units u ON p.unit_id = u.id
		LEFT JOIN tenants t ON p.tenant_id = t.id
		WHERE u.user_id = ?
		ORDER BY p.payment_date DESC, p.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		var p models.Payment
		var paymentType, paymentMethod, payerName, payeeName, notes sql.NullString
		var tenantID, obligationID sql.NullInt64
		var unitName, tenantName sql.NullString

		if err := rows.Scan(
			&p.ID, &p.UnitID, &p.PaymentAmount, &p.PaymentDate, &paymentType,
			&paymentMethod, &p.PaymentDirection, &tenantID, &obligationID,
			&payerName, &payeeName, &notes,
			&unitName, &tenantName, &p.CreatedAt,
		); err != nil {
			return nil, err
		}

		if paymentType.Valid {
			p.PaymentType = &paymentType.String
		}
		if paymentMethod.Valid {
			p.PaymentMethod = &paymentMethod.String
		}
		if tenantID.Valid {
			p.TenantID = &tenantID.Int64
		}
		if obligationID.Valid {
			p.ObligationID = &obligationID.Int64
		}
		if payerName.Valid {
			p.PayerName = &payerName.String
		}
		if payeeName.Valid {
			p.PayeeName = &payeeName.String
		}
		if notes.Valid {
			p.Notes = &notes.String
		}
		p.UnitName = unitName.String
		p.TenantName = tenantName.String

		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// CreatePayment appends a payment for one of the user's units. Returns
// sql.ErrNoRows when the unit belongs to another user.
func (r *Repository) CreatePayment(req *models.CreatePaymentRequest, userID string) (int64, error) {
	var unitID int64
	err := r.db.QueryRow(`SELECT id FROM units WHERE id = ? AND user_id = ?`, req.UnitID, userID).Scan(&unitID)
	if err != nil {
		return 0, err
	}

	res, err := r.db.Exec(`
		INSERT INTO payments (unit_id, payment_amount, payment_date, payment_type,
			payment_method, payment_direction, tenant_id, obligation_id,
			payer_name, payee_name, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		req.UnitID, req.PaymentAmount, req.PaymentDate, req.PaymentType,
		req.PaymentMethod, req.PaymentDirection, req.TenantID, req.ObligationID,
		req.PayerName, req.PayeeName, req.Notes,
	)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// PaymentStats sums payment amounts by direction across all of the user's
// units. No payments means zeros, not NULLs.
func (r *Repository) PaymentStats(userID string) (models.PaymentStats, error) {
	var stats models.PaymentStats

	err := r.db.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN payment_direction = 'incoming' THEN payment_amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN payment_direction = 'outgoing' THEN payment_amount ELSE 0 END), 0)
		FROM payments p
		JOIN units u ON p.unit_id = u.id
		WHERE u.user_id = ?
	`, userID).Scan(&stats.TotalIncome, &stats.TotalExpenses)
	if err != nil {
		return models.PaymentStats{}, err
	}

	return stats, nil
}

package database

import (
	"database/sql"

	"property-manager/models"
)

func scanObligation(row interface{ Scan(...any) error }) (models.Obligation, error) {
	var o models.Obligation
	var payeePhone, endDate, notes sql.NullString
	var autoReminder int

	err := row.Scan(
		&o.ID, &o.UnitID, &o.UserID, &o.ObligationType, &o.PayeeName, &payeePhone,
		&o.Amount, &o.Frequency, &o.StartDate, &endDate, &o.NextDueDate,
		&autoReminder, &o.Status, &notes, &o.UnitName, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return o, err
	}

	if payeePhone.Valid {
		o.PayeePhone = &payeePhone.String
	}
	if endDate.Valid {
		o.EndDate = &endDate.String
	}
	if notes.Valid {
		o.Notes = &notes.String
	}
	o.AutoReminder = autoReminder == 1

	return o, nil
}

// ListObligations returns the user's obligations joined with the unit name,
// soonest due first.
func (r *Repository) ListObligations(userID string) ([]models.Obligation, error) {
	rows, err := r.db.Query(`
		SELECT o.id, o.unit_id, o.user_id, o.obligation_type, o.payee_name, o.payee_phone,
		       o.amount, o.frequency, o.start_date, o.end_date, o.next_due_date,
		       o.auto_reminder, o.status, o.notes, u.unit_name, o.created_at, o.updated_at
		FROM unit_obligations o
		JOIN units u ON o.unit_id = u.id
		WHERE o.user_id = ?
		ORDER BY o.next_due_date ASC, o.id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	obligations := make([]models.Obligation, 0)
	for rows.Next() {
		o, err := scanObligation(rows)
		if err != nil {
			return nil, err
		}
		obligations = append(obligations, o)
	}

	return obligations, rows.Err()
}

func (r *Repository) GetObligation(id int64, userID string) (*models.Obligation, error) {
	row := r.db.QueryRow(`
		SELECT o.id, o.unit_id, o.user_id, o.obligation_type, o.payee_name, o.payee_phone,
		       o.amount, o.frequency, o.start_date, o.end_date, o.next_due_date,
		       o.auto_reminder, o.status, o.notes, u.unit_name, o.created_at, o.updated_at
		FROM unit_obligations o
		JOIN units u ON o.unit_id = u.id
		WHERE o.id = ? AND o.user_id = ?
	`, id, userID)

	o, err := scanObligation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *Repository) CreateObligation(req *models.CreateObligationRequest, userID string) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO unit_obligations (unit_id, user_id, obligation_type, payee_name,
			payee_phone, amount, frequency, start_date, end_date, next_due_date,
			auto_reminder, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		req.UnitID, userID, req.ObligationType, req.PayeeName,
		req.PayeePhone, req.Amount, req.Frequency, req.StartDate, req.EndDate,
		req.NextDueDate, boolToInt(req.AutoReminder), req.Notes,
	)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// UpdateNextDueDate sets the obligation's next due date directly. Used for
// manual corrections; the pay workflow goes through PayObligation.
func (r *Repository) UpdateNextDueDate(id int64, nextDueDate, userID string) error {
	res, err := r.db.Exec(`
		UPDATE unit_obligations
		SET next_due_date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?
	`, nextDueDate, id, userID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// PayObligation records the payment and advances the obligation's due date in
// a single transaction, so the ledger and the schedule cannot drift apart.
// Returns sql.ErrNoRows when the obligation does not belong to the user.
func (r *Repository) PayObligation(payment *models.Payment, obligationID int64, nextDueDate, userID string) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE unit_obligations
		SET next_due_date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?
	`, nextDueDate, obligationID, userID)
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, sql.ErrNoRows
	}

	ins, err := tx.Exec(`
		INSERT INTO payments (unit_id, payment_amount, payment_date, payment_type,
			payment_method, payment_direction, tenant_id, obligation_id,
			payer_name, payee_name, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		payment.UnitID, payment.PaymentAmount, payment.PaymentDate, payment.PaymentType,
		payment.PaymentMethod, payment.PaymentDirection, payment.TenantID, payment.ObligationID,
		payment.PayerName, payment.PayeeName, payment.Notes,
	)
	if err != nil {
		return 0, err
	}

	paymentID, err := ins.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return paymentID, nil
}

// DueObligations returns active obligations with auto reminders whose next
// due date falls within the given number of days from today. Feeds the
// reminder worker.
func (r *Repository) DueObligations(withinDays int) ([]models.ObligationReminder, error) {
	rows, err := r.db.Query(`
		SELECT o.id, o.unit_id, u.unit_name, o.user_id, o.obligation_type,
		       o.payee_name, o.amount, o.frequency, o.next_due_date
		FROM unit_obligations o
		JOIN units u ON o.unit_id = u.id
		WHERE o.status = 'active'
		  AND o.auto_reminder = 1
		  AND o.next_due_date <= date('now', '+' || ? || ' days')
		ORDER BY o.next_due_date ASC
	`, withinDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := make([]models.ObligationReminder, 0)
	for rows.Next() {
		var rem models.ObligationReminder
		if err := rows.Scan(
			&rem.ObligationID, &rem.UnitID, &rem.UnitName, &rem.UserID,
			&rem.ObligationType, &rem.PayeeName, &rem.Amount, &rem.Frequency,
			&rem.NextDueDate,
		); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}

	return reminders, rows.Err()
}

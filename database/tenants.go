package database

import (
	"database/sql"

	"property-manager/models"
)

// ListTenants returns the user's tenants joined with their unit's name,
// newest first. Ownership is scoped through the unit.
func (r *Repository) ListTenants(userID string) ([]models.Tenant, error) {
	rows, err := r.db.Query(`
		SELECT t.id, t.unit_id, t.full_name, t.id_type, t.national_id, t.phone,
		       t.start_date, t.end_date, t.rent_amount, t.deposit_amount, t.status,
		       u.unit_name, t.created_at
		FROM tenants t
		JOIN units u ON t.unit_id = u.id
		WHERE u.user_id = ?
		ORDER BY t.created_at DESC, t.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tenants := make([]models.Tenant, 0)
	for rows.Next() {
		var t models.Tenant
		var nationalID, phone, endDate sql.NullString
		var deposit sql.NullFloat64

		if err := rows.Scan(
			&t.ID, &t.UnitID, &t.FullName, &t.IDType, &nationalID, &phone,
			&t.StartDate, &endDate, &t.RentAmount, &deposit, &t.Status,
			&t.UnitName, &t.CreatedAt,
		); err != nil {
			return nil, err
		}

		if nationalID.Valid {
			t.NationalID = &nationalID.String
		}
		if phone.Valid {
			t.Phone = &phone.String
		}
		if endDate.Valid {
			t.EndDate = &endDate.String
		}
		if deposit.Valid {
			t.DepositAmount = &deposit.Float64
		}
		tenants = append(tenants, t)
	}

	return tenants, rows.Err()
}

// CreateTenant inserts a tenant and flips the owning unit's status to
// 'rented' in the same transaction. The flip happens regardless of the
// tenant's own status field. Returns sql.ErrNoRows when the unit does not
// exist or belongs to another user.
func (r *Repository) CreateTenant(req *models.CreateTenantRequest, userID string) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	// Verify unit ownership before writing anything
	var unitID int64
	err = tx.QueryRow(`SELECT id FROM units WHERE id = ? AND user_id = ?`, req.UnitID, userID).Scan(&unitID)
	if err != nil {
		return 0, err
	}

	status := req.Status
	if status == "" {
		status = models.TenantStatusActive
	}

	res, err := tx.Exec(`
		INSERT INTO tenants (unit_id, full_name, id_type, national_id, phone,
			start_date, end_date, rent_amount, deposit_amount, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		req.UnitID, req.FullName, req.IDType, req.NationalID, req.Phone,
		req.StartDate, req.EndDate, req.RentAmount, req.DepositAmount, status,
	)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(`UPDATE units SET status = ? WHERE id = ?`, models.UnitStatusRented, req.UnitID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return id, nil
}

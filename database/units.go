package database

import (
	"database/sql"
	"time"

	"property-manager/models"
)

// unitColumns is the select list shared by every unit read.
const unitColumns = `id, parent_id, user_id, unit_name, unit_type, description, address,
	is_rentable, is_subleased, rent_amount, status, floor_number, area_sqm,
	created_at, updated_at`

func scanUnit(row interface{ Scan(...any) error }) (models.Unit, error) {
	var u models.Unit
	var parentID sql.NullInt64
	var description, address sql.NullString
	var rentAmount, areaSqm sql.NullFloat64
	var floorNumber sql.NullInt64
	var isRentable, isSubleased int

	err := row.Scan(
		&u.ID, &parentID, &u.UserID, &u.UnitName, &u.UnitType, &description, &address,
		&isRentable, &isSubleased, &rentAmount, &u.Status, &floorNumber, &areaSqm,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return u, err
	}

	if parentID.Valid {
		u.ParentID = &parentID.Int64
	}
	if description.Valid {
		u.Description = &description.String
	}
	if address.Valid {
		u.Address = &address.String
	}
	if rentAmount.Valid {
		u.RentAmount = &rentAmount.Float64
	}
	if floorNumber.Valid {
		u.FloorNumber = &floorNumber.Int64
	}
	if areaSqm.Valid {
		u.AreaSqm = &areaSqm.Float64
	}
	u.IsRentable = isRentable == 1
	u.IsSubleased = isSubleased == 1

	return u, nil
}

// ListUnits returns every unit owned by the user, newest first.
func (r *Repository) ListUnits(userID string) ([]models.Unit, error) {
	rows, err := r.db.Query(`
		SELECT `+unitColumns+`
		FROM units
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := make([]models.Unit, 0)
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	return units, rows.Err()
}

func (r *Repository) GetUnit(id int64, userID string) (*models.Unit, error) {
	row := r.db.QueryRow(`
		SELECT `+unitColumns+`
		FROM units
		WHERE id = ? AND user_id = ?
	`, id, userID)

	u, err := scanUnit(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *Repository) CreateUnit(req *models.CreateUnitRequest, userID string) (int64, error) {
	status := req.Status
	if status == "" {
		status = models.UnitStatusVacant
	}

	res, err := r.db.Exec(`
		INSERT INTO units (parent_id, user_id, unit_name, unit_type, description, address,
			is_rentable, is_subleased, rent_amount, status, floor_number, area_sqm)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		req.ParentID, userID, req.UnitName, req.UnitType, req.Description, req.Address,
		boolToInt(req.IsRentable), boolToInt(req.IsSubleased), req.RentAmount, status,
		req.FloorNumber, req.AreaSqm,
	)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// UpdateUnit overwrites every mutable field of the unit. The WHERE clause
// filters by owner so one user cannot touch another's rows.
func (r *Repository) UpdateUnit(id int64, req *models.UpdateUnitRequest, userID string) error {
	_, err := r.db.Exec(`
		UPDATE units SET
			unit_name = ?,
			unit_type = ?,
			description = ?,
			address = ?,
			is_rentable = ?,
			is_subleased = ?,
			rent_amount = ?,
			status = ?,
			floor_number = ?,
			area_sqm = ?,
			updated_at = ?
		WHERE id = ? AND user_id = ?
	`,
		req.UnitName, req.UnitType, req.Description, req.Address,
		boolToInt(req.IsRentable), boolToInt(req.IsSubleased), req.RentAmount, req.Status,
		req.FloorNumber, req.AreaSqm, time.Now(), id, userID,
	)
	return err
}

// DeleteUnit hard-deletes the unit. Dependent tenants, payments, obligations
// and expenses are left in place referencing the missing id.
func (r *Repository) DeleteUnit(id int64, userID string) error {
	_, err := r.db.Exec(`DELETE FROM units WHERE id = ? AND user_id = ?`, id, userID)
	return err
}

// ListChildren returns the units directly under parentID.
func (r *Repository) ListChildren(parentID int64, userID string) ([]models.Unit, error) {
	rows, err := r.db.Query(`
		SELECT `+unitColumns+`
		FROM units
		WHERE parent_id = ? AND user_id = ?
		ORDER BY created_at DESC, id DESC
	`, parentID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := make([]models.Unit, 0)
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	return units, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

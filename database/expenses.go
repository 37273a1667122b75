package database

import (
	"database/sql"
	"errors"

	"property-manager/models"
)

// ErrUnknownCategory marks an expense pointing at a category id that does not
// exist. Categories have no owner, so this is distinct from the ownership
// miss signalled by sql.ErrNoRows.
var ErrUnknownCategory = errors.New("unknown expense category")

// ==================== CATEGORIES ====================

func (r *Repository) ListCategories() ([]models.ExpenseCategory, error) {
	rows, err := r.db.Query(`
		SELECT id, category_name, description, created_at
		FROM expense_categories
		ORDER BY category_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.ExpenseCategory, 0)
	for rows.Next() {
		var c models.ExpenseCategory
		var description sql.NullString
		if err := rows.Scan(&c.ID, &c.CategoryName, &description, &c.CreatedAt); err != nil {
			return nil, err
		}
		if description.Valid {
			c.Description = &description.String
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *Repository) CreateCategory(req *models.CreateCategoryRequest) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO expense_categories (category_name, description) VALUES (?, ?)
	`, req.CategoryName, req.Description)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// ==================== EXPENSES ====================

// ListExpenses returns the user's expenses with category and unit names
// joined, most recent expense date first.
func (r *Repository) ListExpenses(userID string) ([]models.Expense, error) {
	rows, err := r.db.Query(`
		SELECT e.id, e.expense_category_id, e.user_id, e.unit_id, e.expense_name,
		       e.expense_amount, e.expense_date, e.notes,
		       ec.category_name, u.unit_name, e.created_at
		FROM expenses e
		JOIN expense_categories ec ON e.expense_category_id = ec.id
		JOIN units u ON e.unit_id = u.id
		WHERE e.user_id = ?
		ORDER BY e.expense_date DESC, e.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var e models.Expense
		var notes sql.NullString
		if err := rows.Scan(
			&e.ID, &e.ExpenseCategoryID, &e.UserID, &e.UnitID, &e.ExpenseName,
			&e.ExpenseAmount, &e.ExpenseDate, &notes,
			&e.CategoryName, &e.UnitName, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		if notes.Valid {
			e.Notes = &notes.String
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// CreateExpense records an expense against one of the user's units. Returns
// sql.ErrNoRows when the unit belongs to another user and ErrUnknownCategory
// when the category id does not exist.
func (r *Repository) CreateExpense(req *models.CreateExpenseRequest, userID string) (int64, error) {
	var unitID int64
	err := r.db.QueryRow(`SELECT id FROM units WHERE id = ? AND user_id = ?`, req.UnitID, userID).Scan(&unitID)
	if err != nil {
		return 0, err
	}

	var categoryID int64
	err = r.db.QueryRow(`SELECT id FROM expense_categories WHERE id = ?`, req.ExpenseCategoryID).Scan(&categoryID)
	if err == sql.ErrNoRows {
		return 0, ErrUnknownCategory
	}
	if err != nil {
		return 0, err
	}

	res, err := r.db.Exec(`
		INSERT INTO expenses (expense_category_id, user_id, unit_id, expense_name,
			expense_amount, expense_date, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		req.ExpenseCategoryID, userID, req.UnitID, req.ExpenseName,
		req.ExpenseAmount, req.ExpenseDate, req.Notes,
	)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// CategoryTotals sums expense amounts per category over an inclusive date
// range.
func (r *Repository) CategoryTotals(userID, startDate, endDate string) ([]models.CategoryTotal, error) {
	rows, err := r.db.Query(`
		SELECT ec.category_name, SUM(e.expense_amount) AS total
		FROM expenses e
		JOIN expense_categories ec ON e.expense_category_id = ec.id
		WHERE e.user_id = ? AND e.expense_date BETWEEN ? AND ?
		GROUP BY ec.category_name
		ORDER BY ec.category_name
	`, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make([]models.CategoryTotal, 0)
	for rows.Next() {
		var t models.CategoryTotal
		if err := rows.Scan(&t.CategoryName, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

package services

import (
	"database/sql"
	"errors"
	"log/slog"

	"property-manager/database"
	"property-manager/models"
)

// ExpenseService handles business logic for expenses and their categories
type ExpenseService struct {
	repo ExpenseRepository
}

func NewExpenseService(repo ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// Categories are global across users. Failed reads degrade to an empty list.
func (es *ExpenseService) Categories() []models.ExpenseCategory {
	categories, err := es.repo.ListCategories()
	if err != nil {
		slog.Error("failed to list expense categories", "error", err)
		return []models.ExpenseCategory{}
	}
	return categories
}

func (es *ExpenseService) CreateCategory(req *models.CreateCategoryRequest) (int64, error) {
	return es.repo.CreateCategory(req)
}

// List returns the user's expenses, most recent first. Failed reads degrade
// to an empty list.
func (es *ExpenseService) List(userID string) []models.Expense {
	expenses, err := es.repo.ListExpenses(userID)
	if err != nil {
		slog.Error("failed to list expenses", "user_id", userID, "error", err)
		return []models.Expense{}
	}
	return expenses
}

func (es *ExpenseService) Create(req *models.CreateExpenseRequest, userID string) (int64, error) {
	id, err := es.repo.CreateExpense(req, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrUnitNotFound
	}
	if errors.Is(err, database.ErrUnknownCategory) {
		return 0, ErrCategoryNotFound
	}
	return id, err
}

// CategoryTotals sums expenses per category over an inclusive date range.
// Failed reads degrade to an empty report.
func (es *ExpenseService) CategoryTotals(userID, startDate, endDate string) []models.CategoryTotal {
	totals, err := es.repo.CategoryTotals(userID, startDate, endDate)
	if err != nil {
		slog.Error("failed to compute category totals", "user_id", userID, "error", err)
		return []models.CategoryTotal{}
	}
	return totals
}

package models

import "time"

type ExpenseCategory struct {
	ID           int64     `json:"id"`
	CategoryName string    `json:"category_name"`
	Description  *string   `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

type Expense struct {
	ID                int64     `json:"id"`
	ExpenseCategoryID int64     `json:"expense_category_id"`
	UserID            string    `json:"user_id"`
	UnitID            int64     `json:"unit_id"`
	ExpenseName       string    `json:"expense_name"`
	ExpenseAmount     float64   `json:"expense_amount"`
	ExpenseDate       string    `json:"expense_date"`
	Notes             *string   `json:"notes"`
	CategoryName      string    `json:"category_name,omitempty"`
	UnitName          string    `json:"unit_name,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type CreateCategoryRequest struct {
	CategoryName string  `json:"category_name" validate:"required,min=1,max=100"`
	Description  *string `json:"description"`
}

type CreateExpenseRequest struct {
	ExpenseCategoryID int64   `json:"expense_category_id" validate:"required,gt=0"`
	UnitID            int64   `json:"unit_id" validate:"required,gt=0"`
	ExpenseName       string  `json:"expense_name" validate:"required,min=1,max=200"`
	ExpenseAmount     float64 `json:"expense_amount" validate:"required,gt=0"`
	ExpenseDate       string  `json:"expense_date" validate:"required,dateformat"`
	Notes             *string `json:"notes"`
}

// CategoryTotal is one row of the per-category expense report.
type CategoryTotal struct {
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`
}

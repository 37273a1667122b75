package services

import (
	"time"

	"property-manager/models"
)

// UnitRepository defines the interface for unit data access
type UnitRepository interface {
	ListUnits(userID string) ([]models.Unit, error)
	GetUnit(id int64, userID string) (*models.Unit, error)
	CreateUnit(req *models.CreateUnitRequest, userID string) (int64, error)
	UpdateUnit(id int64, req *models.UpdateUnitRequest, userID string) error
	DeleteUnit(id int64, userID string) error
	ListChildren(parentID int64, userID string) ([]models.Unit, error)
}

// TenantRepository defines the interface for tenant data access
type TenantRepository interface {
	ListTenants(userID string) ([]models.Tenant, error)
	CreateTenant(req *models.CreateTenantRequest, userID string) (int64, error)
}

// ObligationRepository defines the interface for obligation data access
type ObligationRepository interface {
	ListObligations(userID string) ([]models.Obligation, error)
	GetObligation(id int64, userID string) (*models.Obligation, error)
	CreateObligation(req *models.CreateObligationRequest, userID string) (int64, error)
	UpdateNextDueDate(id int64, nextDueDate, userID string) error
	PayObligation(payment *models.Payment, obligationID int64, nextDueDate, userID string) (int64, error)
}

// PaymentRepository defines the interface for payment data access
type PaymentRepository interface {
	ListPayments(userID string) ([]models.Payment, error)
	CreatePayment(req *models.CreatePaymentRequest, userID string) (int64, error)
	PaymentStats(userID string) (models.PaymentStats, error)
}

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	ListCategories() ([]models.ExpenseCategory, error)
	CreateCategory(req *models.CreateCategoryRequest) (int64, error)
	ListExpenses(userID string) ([]models.Expense, error)
	CreateExpense(req *models.CreateExpenseRequest, userID string) (int64, error)
	CategoryTotals(userID, startDate, endDate string) ([]models.CategoryTotal, error)
}

// AuthRepository defines the interface for auth-related data access
type AuthRepository interface {
	UpsertUser(user *models.User) error
	GetUser(userID string) (*models.User, error)
}

// SessionStore defines the interface for session management
type SessionStore interface {
	Create(userID, email, name, picture string) (*models.Session, error)
	Get(sessionID string) (*models.Session, error)
	Delete(sessionID string) error
}

// Clock returns the current time; swapped out in tests where schedule
// classification depends on "now".
type Clock func() time.Time

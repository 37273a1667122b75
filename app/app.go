package app

import (
	"log/slog"

	"property-manager/database"
	"property-manager/services"
	"property-manager/session"
	"property-manager/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo         *database.Repository
	SessionStore *session.Store
	Validator    *validator.Validator
	Logger       *slog.Logger

	AuthService       *services.AuthService
	UnitService       *services.UnitService
	TenantService     *services.TenantService
	ObligationService *services.ObligationService
	PaymentService    *services.PaymentService
	ExpenseService    *services.ExpenseService
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, sessionStore *session.Store, logger *slog.Logger) *App {
	return &App{
		Repo:         repo,
		SessionStore: sessionStore,
		Validator:    validator.New(),
		Logger:       logger,

		AuthService:       services.NewAuthService(repo, sessionStore),
		UnitService:       services.NewUnitService(repo),
		TenantService:     services.NewTenantService(repo),
		ObligationService: services.NewObligationService(repo),
		PaymentService:    services.NewPaymentService(repo),
		ExpenseService:    services.NewExpenseService(repo),
	}
}

package services

import (
	"database/sql"
	"errors"
	"log/slog"

	"property-manager/models"
)

// TenantService handles business logic for tenants
type TenantService struct {
	repo TenantRepository
}

func NewTenantService(repo TenantRepository) *TenantService {
	return &TenantService{repo: repo}
}

// List returns the user's tenants, newest first. Failed reads degrade to an
// empty list.
func (ts *TenantService) List(userID string) []models.Tenant {
	tenants, err := ts.repo.ListTenants(userID)
	if err != nil {
		slog.Error("failed to list tenants", "user_id", userID, "error", err)
		return []models.Tenant{}
	}
	return tenants
}

// Create inserts a tenant. The owning unit's status flips to 'rented' as a
// side effect regardless of the tenant's own status.
func (ts *TenantService) Create(req *models.CreateTenantRequest, userID string) (int64, error) {
	id, err := ts.repo.CreateTenant(req, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrUnitNotFound
	}
	return id, err
}

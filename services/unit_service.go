package services

import (
	"log/slog"

	"property-manager/models"
)

// UnitService handles business logic for units and the unit hierarchy
type UnitService struct {
	repo UnitRepository
}

func NewUnitService(repo UnitRepository) *UnitService {
	return &UnitService{repo: repo}
}

// List returns the user's units, newest first. A failed read degrades to an
// empty list so dashboard screens never see an error.
func (us *UnitService) List(userID string) []models.Unit {
	units, err := us.repo.ListUnits(userID)
	if err != nil {
		slog.Error("failed to list units", "user_id", userID, "error", err)
		return []models.Unit{}
	}
	return units
}

// Hierarchy returns the user's units flattened depth-first, parents before
// children, each tagged with its depth.
func (us *UnitService) Hierarchy(userID string) []models.UnitNode {
	return FlattenHierarchy(us.List(userID))
}

func (us *UnitService) Create(req *models.CreateUnitRequest, userID string) (int64, error) {
	return us.repo.CreateUnit(req, userID)
}

func (us *UnitService) Update(id int64, req *models.UpdateUnitRequest, userID string) error {
	return us.repo.UpdateUnit(id, req, userID)
}

// Delete hard-deletes a unit. Dependent rows are intentionally left behind;
// see DeleteUnit in the database package.
func (us *UnitService) Delete(id int64, userID string) error {
	return us.repo.DeleteUnit(id, userID)
}

func (us *UnitService) Children(parentID int64, userID string) []models.Unit {
	units, err := us.repo.ListChildren(parentID, userID)
	if err != nil {
		slog.Error("failed to list child units", "parent_id", parentID, "error", err)
		return []models.Unit{}
	}
	return units
}

// FlattenHierarchy builds the parent/child tree from a flat unit list and
// flattens it depth-first. Units whose parent is missing from the list are
// treated as roots, and a visited set bounds traversal so a malformed parent
// chain (A -> B -> A) cannot recurse forever.
func FlattenHierarchy(units []models.Unit) []models.UnitNode {
	byID := make(map[int64]bool, len(units))
	for _, u := range units {
		byID[u.ID] = true
	}

	children := make(map[int64][]models.Unit)
	roots := make([]models.Unit, 0)
	for _, u := range units {
		if u.ParentID == nil || !byID[*u.ParentID] {
			roots = append(roots, u)
			continue
		}
		children[*u.ParentID] = append(children[*u.ParentID], u)
	}

	visited := make(map[int64]bool, len(units))
	result := make([]models.UnitNode, 0, len(units))

	var walk func(u models.Unit, depth int)
	walk = func(u models.Unit, depth int) {
		if visited[u.ID] {
			return
		}
		visited[u.ID] = true
		result = append(result, models.UnitNode{Unit: u, Depth: depth})
		for _, child := range children[u.ID] {
			walk(child, depth+1)
		}
	}

	for _, root := range roots {
		walk(root, 0)
	}

	// Anything still unvisited sits on a cycle with no root; surface it flat
	// rather than dropping it.
	for _, u := range units {
		if !visited[u.ID] {
			walk(u, 0)
		}
	}

	return result
}

package services

import (
	"errors"
	"testing"

	"property-manager/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==================== MOCKS ====================

// MockUnitRepository is a mock implementation of UnitRepository
type MockUnitRepository struct {
	mock.Mock
}

var _ UnitRepository = (*MockUnitRepository)(nil)

func (m *MockUnitRepository) ListUnits(userID string) ([]models.Unit, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Unit), args.Error(1)
}

func (m *MockUnitRepository) GetUnit(id int64, userID string) (*models.Unit, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Unit), args.Error(1)
}

func (m *MockUnitRepository) CreateUnit(req *models.CreateUnitRequest, userID string) (int64, error) {
	args := m.Called(req, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUnitRepository) UpdateUnit(id int64, req *models.UpdateUnitRequest, userID string) error {
	args := m.Called(id, req, userID)
	return args.Error(0)
}

func (m *MockUnitRepository) DeleteUnit(id int64, userID string) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockUnitRepository) ListChildren(parentID int64, userID string) ([]models.Unit, error) {
	args := m.Called(parentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Unit), args.Error(1)
}

// ==================== HELPERS ====================

func unit(id int64, parentID *int64, name string) models.Unit {
	return models.Unit{ID: id, ParentID: parentID, UnitName: name, UnitType: "apartment"}
}

func ptr(v int64) *int64 { return &v }

func indexOf(nodes []models.UnitNode, id int64) int {
	for i, n := range nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// ==================== TESTS ====================

func TestFlattenHierarchy(t *testing.T) {
	t.Run("Roots sit at depth zero", func(t *testing.T) {
		nodes := FlattenHierarchy([]models.Unit{
			unit(1, nil, "Building A"),
			unit(2, nil, "Building B"),
		})
		require.Len(t, nodes, 2)
		assert.Equal(t, 0, nodes[0].Depth)
		assert.Equal(t, 0, nodes[1].Depth)
	})

	t.Run("Children follow their parent at depth plus one", func(t *testing.T) {
		nodes := FlattenHierarchy([]models.Unit{
			unit(1, nil, "Building"),
			unit(2, ptr(1), "Floor 1"),
			unit(3, ptr(2), "Apt 101"),
			unit(4, ptr(1), "Floor 2"),
		})
		require.Len(t, nodes, 4)

		iBuilding := indexOf(nodes, 1)
		iFloor1 := indexOf(nodes, 2)
		iApt := indexOf(nodes, 3)
		iFloor2 := indexOf(nodes, 4)

		assert.Greater(t, iFloor1, iBuilding)
		assert.Greater(t, iApt, iFloor1)
		assert.Greater(t, iFloor2, iBuilding)

		assert.Equal(t, 0, nodes[iBuilding].Depth)
		assert.Equal(t, 1, nodes[iFloor1].Depth)
		assert.Equal(t, 2, nodes[iApt].Depth)
		assert.Equal(t, 1, nodes[iFloor2].Depth)
	})

	t.Run("Cycle does not recurse forever", func(t *testing.T) {
		// A -> B -> A: malformed parent chain with no root
		nodes := FlattenHierarchy([]models.Unit{
			unit(1, ptr(2), "A"),
			unit(2, ptr(1), "B"),
		})
		assert.Len(t, nodes, 2)
	})

	t.Run("Missing parent treated as root", func(t *testing.T) {
		nodes := FlattenHierarchy([]models.Unit{
			unit(5, ptr(99), "Orphan"),
		})
		require.Len(t, nodes, 1)
		assert.Equal(t, 0, nodes[0].Depth)
	})

	t.Run("Empty input", func(t *testing.T) {
		nodes := FlattenHierarchy(nil)
		assert.NotNil(t, nodes)
		assert.Empty(t, nodes)
	})
}

func TestUnitService_List(t *testing.T) {
	t.Run("Read failure degrades to empty list", func(t *testing.T) {
		repo := new(MockUnitRepository)
		repo.On("ListUnits", "user123").Return(nil, errors.New("engine unreachable"))

		svc := NewUnitService(repo)
		units := svc.List("user123")
		assert.NotNil(t, units)
		assert.Empty(t, units)
	})

	t.Run("Passes the repository result through", func(t *testing.T) {
		expected := []models.Unit{unit(1, nil, "Building A")}
		repo := new(MockUnitRepository)
		repo.On("ListUnits", "user123").Return(expected, nil)

		svc := NewUnitService(repo)
		assert.Equal(t, expected, svc.List("user123"))
	})
}

func TestUnitService_Create(t *testing.T) {
	repo := new(MockUnitRepository)
	req := &models.CreateUnitRequest{UnitName: "Shop 1", UnitType: "shop"}
	repo.On("CreateUnit", req, "user123").Return(int64(11), nil)

	svc := NewUnitService(repo)
	id, err := svc.Create(req, "user123")
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestUnitService_Children(t *testing.T) {
	t.Run("Read failure degrades to empty list", func(t *testing.T) {
		repo := new(MockUnitRepository)
		repo.On("ListChildren", int64(1), "user123").Return(nil, errors.New("boom"))

		svc := NewUnitService(repo)
		assert.Empty(t, svc.Children(1, "user123"))
	})
}

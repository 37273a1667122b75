package models

import "time"

// Unit types understood by the application
const (
	UnitTypeApartment = "apartment"
	UnitTypeBuilding  = "building"
	UnitTypeFloor     = "floor"
	UnitTypeRoom      = "room"
	UnitTypeShop      = "shop"
)

// Unit statuses
const (
	UnitStatusVacant      = "vacant"
	UnitStatusRented      = "rented"
	UnitStatusMaintenance = "maintenance"
)

type Unit struct {
	ID          int64     `json:"id"`
	ParentID    *int64    `json:"parent_id"`
	UserID      string    `json:"user_id"`
	UnitName    string    `json:"unit_name"`
	UnitType    string    `json:"unit_type"`
	Description *string   `json:"description"`
	Address     *string   `json:"address"`
	IsRentable  bool      `json:"is_rentable"`
	IsSubleased bool      `json:"is_subleased"`
	RentAmount  *float64  `json:"rent_amount"`
	Status      string    `json:"status"`
	FloorNumber *int64    `json:"floor_number"`
	AreaSqm     *float64  `json:"area_sqm"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UnitNode is a unit positioned in the flattened hierarchy view.
// Depth is 0 for root units and parent depth + 1 otherwise.
type UnitNode struct {
	Unit
	Depth int `json:"depth"`
}

type CreateUnitRequest struct {
	ParentID    *int64   `json:"parent_id"`
	UnitName    string   `json:"unit_name" validate:"required,min=1,max=200"`
	UnitType    string   `json:"unit_type" validate:"required,unittype"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	IsRentable  bool     `json:"is_rentable"`
	IsSubleased bool     `json:"is_subleased"`
	RentAmount  *float64 `json:"rent_amount" validate:"omitempty,gte=0"`
	Status      string   `json:"status" validate:"omitempty,unitstatus"`
	FloorNumber *int64   `json:"floor_number"`
	AreaSqm     *float64 `json:"area_sqm" validate:"omitempty,gte=0"`
}

// UpdateUnitRequest carries a full replacement of the mutable unit fields.
// Callers must supply every field; there is no partial patch.
type UpdateUnitRequest struct {
	UnitName    string   `json:"unit_name" validate:"required,min=1,max=200"`
	UnitType    string   `json:"unit_type" validate:"required,unittype"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	IsRentable  bool     `json:"is_rentable"`
	IsSubleased bool     `json:"is_subleased"`
	RentAmount  *float64 `json:"rent_amount" validate:"omitempty,gte=0"`
	Status      string   `json:"status" validate:"required,unitstatus"`
	FloorNumber *int64   `json:"floor_number"`
	AreaSqm     *float64 `json:"area_sqm" validate:"omitempty,gte=0"`
}

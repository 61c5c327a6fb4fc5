// Package property holds buildings and the flats inside them.
package property

import (
	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/domain/shared/query"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Building is a managed property
type Building struct {
	shared.BaseEntity
	Name     string `json:"name" gorm:"type:varchar(200);not null;index" binding:"required,max=200"`
	Address  string `json:"address" gorm:"type:text" binding:"max=500"`
	Floors   int    `json:"floors" gorm:"not null" binding:"gte=0,lte=300"`
	IsActive bool   `json:"isActive" gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Building) TableName() string {
	return "buildings"
}

// BuildingSchema is the field registry of buildings
var BuildingSchema = query.NewSchema("",
	query.F("name", "name", query.Searchable, query.Sortable, query.Writable),
	query.F("address", "address", query.Searchable, query.Writable),
	query.F("floors", "floors", query.Sortable, query.Writable),
	query.F("isActive", "is_active", query.Filterable, query.Sortable, query.Writable),
)

// Flat is a unit inside a building
type Flat struct {
	shared.BaseEntity
	FlatNo     string          `json:"flatNo" gorm:"type:varchar(20);not null;index" binding:"required,max=20"`
	BuildingID uuid.UUID       `json:"buildingId" gorm:"type:uuid;not null;index" binding:"required"`
	Floor      int             `json:"floor" gorm:"not null" binding:"gte=0"`
	Rent       decimal.Decimal `json:"rent" gorm:"type:decimal(18,4);not null"`
	IsOccupied bool            `json:"isOccupied" gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Flat) TableName() string {
	return "flats"
}

// Validate checks invariants the binding tags cannot express
func (f *Flat) Validate() error {
	if f.Rent.IsNegative() {
		return shared.NewInvalidInputError("rent cannot be negative")
	}
	return nil
}

// FlatSchema is the field registry of flats
var FlatSchema = query.NewSchema("",
	query.F("flatNo", "flat_no", query.Searchable, query.Sortable, query.Writable),
	query.F("buildingId", "building_id", query.Filterable, query.Writable),
	query.F("floor", "floor", query.Sortable, query.Writable),
	query.F("rent", "rent", query.Sortable, query.Writable),
	query.F("isOccupied", "is_occupied", query.Filterable, query.Sortable, query.Writable),
)

package inventory

import (
	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/domain/shared/query"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Jewellery code sequence: JWL-000001, ...
const (
	JewelleryCodePrefix = "JWL-"
	JewelleryCodeWidth  = 6
)

// Carat is a gold purity grade jewellery items are made in
type Carat struct {
	shared.BaseEntity
	Label    string          `json:"label" gorm:"type:varchar(50);not null;index" binding:"required,max=50"`
	Purity   decimal.Decimal `json:"purity" gorm:"type:decimal(7,4);not null"`
	IsActive bool            `json:"isActive" gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Carat) TableName() string {
	return "carats"
}

// Validate checks the purity is a fraction between 0 and 1
func (c *Carat) Validate() error {
	if c.Purity.IsNegative() || c.Purity.GreaterThan(decimal.NewFromInt(1)) {
		return shared.NewInvalidInputError("purity must be between 0 and 1")
	}
	return nil
}

// CaratSchema is the field registry of carats
var CaratSchema = query.NewSchema("",
	query.F("label", "label", query.Searchable, query.Sortable, query.Writable),
	query.F("purity", "purity", query.Sortable, query.Writable),
	query.F("isActive", "is_active", query.Filterable, query.Sortable, query.Writable),
)

// Jewellery is a stocked jewellery item
type Jewellery struct {
	shared.BaseEntity
	Code    string          `json:"code" gorm:"type:varchar(20);not null;uniqueIndex"`
	Name    string          `json:"name" gorm:"type:varchar(200);not null;index" binding:"required,max=200"`
	CaratID uuid.UUID       `json:"caratId" gorm:"type:uuid;not null;index" binding:"required"`
	Weight  decimal.Decimal `json:"weight" gorm:"type:decimal(12,4);not null"`
	Price   decimal.Decimal `json:"price" gorm:"type:decimal(18,4);not null"`
	Remarks string          `json:"remarks" gorm:"type:text" binding:"max=1000"`
}

// TableName returns the table name for GORM
func (Jewellery) TableName() string {
	return "jewelleries"
}

// Validate checks invariants the binding tags cannot express
func (j *Jewellery) Validate() error {
	if !j.Weight.IsPositive() {
		return shared.NewInvalidInputError("weight must be positive")
	}
	if j.Price.IsNegative() {
		return shared.NewInvalidInputError("price cannot be negative")
	}
	return nil
}

// JewellerySchema is the field registry of jewellery items
var JewellerySchema = query.NewSchema("",
	query.F("code", "code", query.Searchable, query.Sortable),
	query.F("name", "name", query.Searchable, query.Sortable, query.Writable),
	query.F("caratId", "carat_id", query.Filterable, query.Writable),
	query.F("weight", "weight", query.Sortable, query.Writable),
	query.F("price", "price", query.Sortable, query.Writable),
	query.F("remarks", "remarks", query.Writable),
)

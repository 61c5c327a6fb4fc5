package inventory

import (
	"time"

	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/domain/shared/query"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset code sequence: AST-00000001, ...
const (
	AssetCodePrefix = "AST-"
	AssetCodeWidth  = 8
)

// AssetStatus represents the lifecycle state of an asset
type AssetStatus string

const (
	AssetStatusActive      AssetStatus = "active"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusDisposed    AssetStatus = "disposed"
)

// Asset is a fixed asset, optionally bought from a vendor
type Asset struct {
	shared.BaseEntity
	AssetCode    string          `json:"assetCode" gorm:"type:varchar(20);not null;uniqueIndex"`
	Name         string          `json:"name" gorm:"type:varchar(200);not null;index" binding:"required,max=200"`
	VendorID     *uuid.UUID      `json:"vendorId" gorm:"type:uuid;index"`
	PurchaseDate time.Time       `json:"purchaseDate" gorm:"not null;index" binding:"required"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(18,4);not null"`
	Status       AssetStatus     `json:"status" gorm:"type:varchar(20);not null;index" binding:"omitempty,oneof=active maintenance disposed"`
	Remarks      string          `json:"remarks" gorm:"type:text" binding:"max=1000"`
}

// TableName returns the table name for GORM
func (Asset) TableName() string {
	return "assets"
}

// Validate checks invariants the binding tags cannot express and defaults the status
func (a *Asset) Validate() error {
	if a.Price.IsNegative() {
		return shared.NewInvalidInputError("price cannot be negative")
	}
	if a.Status == "" {
		a.Status = AssetStatusActive
	}
	return nil
}

// AssetSchema is the field registry of assets
var AssetSchema = query.NewSchema("purchaseDate",
	query.F("assetCode", "asset_code", query.Searchable, query.Sortable),
	query.F("name", "name", query.Searchable, query.Sortable, query.Writable),
	query.F("vendorId", "vendor_id", query.Filterable, query.Writable),
	query.F("purchaseDate", "purchase_date", query.Sortable, query.Writable),
	query.F("price", "price", query.Sortable, query.Writable),
	query.F("status", "status", query.Filterable, query.Sortable, query.Writable),
	query.F("remarks", "remarks", query.Writable),
)

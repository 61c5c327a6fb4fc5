package partner

import (
	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/domain/shared/query"
)

// Vendor code sequence: VND-000001, VND-000002, ...
const (
	VendorCodePrefix = "VND-"
	VendorCodeWidth  = 6
)

// Vendor is a supplier assets are bought from
type Vendor struct {
	shared.BaseEntity
	VendorID string `json:"vendorId" gorm:"type:varchar(20);not null;uniqueIndex"`
	Name     string `json:"name" gorm:"type:varchar(200);not null;index" binding:"required,max=200"`
	Phone    string `json:"phone" gorm:"type:varchar(50);index" binding:"max=50"`
	Email    string `json:"email" gorm:"type:varchar(200)" binding:"omitempty,email,max=200"`
	Address  string `json:"address" gorm:"type:text" binding:"max=500"`
	IsActive bool   `json:"isActive" gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// VendorSchema is the field registry of vendors. vendorId is issued by the sequence and never written by clients.
var VendorSchema = query.NewSchema("",
	query.F("vendorId", "vendor_id", query.Searchable, query.Sortable),
	query.F("name", "name", query.Searchable, query.Sortable, query.Writable),
	query.F("phone", "phone", query.Searchable, query.Writable),
	query.F("email", "email", query.Writable),
	query.F("address", "address", query.Writable),
	query.F("isActive", "is_active", query.Filterable, query.Sortable, query.Writable),
)

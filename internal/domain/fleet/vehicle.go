// Package fleet holds company vehicles that expenses can be attributed to.
package fleet

import (
	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/domain/shared/query"
)

// Vehicle is a company vehicle
type Vehicle struct {
	shared.BaseEntity
	Label          string `json:"label" gorm:"type:varchar(100);not null;index" binding:"required,max=100"`
	RegistrationNo string `json:"registrationNo" gorm:"type:varchar(50);index" binding:"max=50"`
	Model          string `json:"model" gorm:"type:varchar(100)" binding:"max=100"`
	IsActive       bool   `json:"isActive" gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Vehicle) TableName() string {
	return "vehicles"
}

// VehicleSchema is the field registry of vehicles
var VehicleSchema = query.NewSchema("",
	query.F("label", "label", query.Searchable, query.Sortable, query.Writable),
	query.F("registrationNo", "registration_no", query.Searchable, query.Sortable, query.Writable),
	query.F("model", "model", query.Writable),
	query.F("isActive", "is_active", query.Filterable, query.Sortable, query.Writable),
)

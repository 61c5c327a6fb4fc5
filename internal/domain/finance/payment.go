package finance

import (
	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/domain/shared/query"
	"github.com/google/uuid"
)

// PaymentMethod is a way money moves, such as cash or bank transfer
type PaymentMethod struct {
	shared.BaseEntity
	Label    string `json:"label" gorm:"type:varchar(100);not null;index" binding:"required,max=100"`
	IsActive bool   `json:"isActive" gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// PaymentMethodSchema is the field registry of payment methods
var PaymentMethodSchema = query.NewSchema("",
	query.F("label", "label", query.Searchable, query.Sortable, query.Writable),
	query.F("isActive", "is_active", query.Filterable, query.Sortable, query.Writable),
)

// PaymentSource is an account that balances are deposited into and expenses are paid from
type PaymentSource struct {
	shared.BaseEntity
	Label           string    `json:"label" gorm:"type:varchar(100);not null;index" binding:"required,max=100"`
	AccountNumber   string    `json:"accountNumber" gorm:"type:varchar(50);not null;default:'';index" binding:"max=50"`
	PaymentMethodID uuid.UUID `json:"paymentMethodId" gorm:"type:uuid;not null;index" binding:"required"`
	IsActive        bool      `json:"isActive" gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (PaymentSource) TableName() string {
	return "payment_sources"
}

// PaymentSourceSchema is the field registry of payment sources
var PaymentSourceSchema = query.NewSchema("",
	query.F("label", "label", query.Searchable, query.Sortable, query.Writable),
	query.F("accountNumber", "account_number", query.Searchable, query.Writable),
	query.F("paymentMethodId", "payment_method_id", query.Filterable, query.Writable),
	query.F("isActive", "is_active", query.Filterable, query.Sortable, query.Writable),
)

package finance

import (
	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/domain/shared/query"
	"github.com/google/uuid"
)

// AccountHead is a top-level ledger grouping that expense heads roll up into
type AccountHead struct {
	shared.BaseEntity
	Label       string `json:"label" gorm:"type:varchar(100);not null;index" binding:"required,max=100"`
	Description string `json:"description" gorm:"type:text" binding:"max=1000"`
	IsActive    bool   `json:"isActive" gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (AccountHead) TableName() string {
	return "account_heads"
}

// AccountHeadSchema is the field registry of account heads
var AccountHeadSchema = query.NewSchema("",
	query.F("label", "label", query.Searchable, query.Sortable, query.Writable),
	query.F("description", "description", query.Writable),
	query.F("isActive", "is_active", query.Filterable, query.Sortable, query.Writable),
)

// ExpenseHead classifies expenses under an account head
type ExpenseHead struct {
	shared.BaseEntity
	Label         string    `json:"label" gorm:"type:varchar(100);not null;index" binding:"required,max=100"`
	AccountHeadID uuid.UUID `json:"accountHeadId" gorm:"type:uuid;not null;index" binding:"required"`
	Description   string    `json:"description" gorm:"type:text" binding:"max=1000"`
	IsActive      bool      `json:"isActive" gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ExpenseHead) TableName() string {
	return "expense_heads"
}

// ExpenseHeadSchema is the field registry of expense heads
var ExpenseHeadSchema = query.NewSchema("",
	query.F("label", "label", query.Searchable, query.Sortable, query.Writable),
	query.F("accountHeadId", "account_head_id", query.Filterable, query.Writable),
	query.F("description", "description", query.Writable),
	query.F("isActive", "is_active", query.Filterable, query.Sortable, query.Writable),
)

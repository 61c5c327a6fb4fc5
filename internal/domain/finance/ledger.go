package finance

import (
	"time"

	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/domain/shared/query"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Balance is a deposit into a payment source
type Balance struct {
	shared.BaseEntity
	PaymentSourceID uuid.UUID       `json:"paymentSourceId" gorm:"type:uuid;not null;index" binding:"required"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(18,4);not null"`
	Date            time.Time       `json:"date" gorm:"not null;index" binding:"required"`
	Remarks         string          `json:"remarks" gorm:"type:text" binding:"max=1000"`
}

// TableName returns the table name for GORM
func (Balance) TableName() string {
	return "balances"
}

// Validate checks invariants the binding tags cannot express
func (b *Balance) Validate() error {
	if !b.Amount.IsPositive() {
		return shared.NewInvalidInputError("amount must be positive")
	}
	return nil
}

// BalanceSchema is the field registry of balances
var BalanceSchema = query.NewSchema("date",
	query.F("paymentSourceId", "payment_source_id", query.Filterable, query.Writable),
	query.F("amount", "amount", query.Sortable, query.Writable),
	query.F("date", "date", query.Sortable, query.Writable),
	query.F("remarks", "remarks", query.Searchable, query.Writable),
)

// Expense is money paid out of a payment source under an expense head.
// Vehicle and vendor are optional attributions.
type Expense struct {
	shared.BaseEntity
	VoucherNo       string          `json:"voucherNo" gorm:"type:varchar(50);index" binding:"max=50"`
	ExpenseHeadID   uuid.UUID       `json:"expenseHeadId" gorm:"type:uuid;not null;index" binding:"required"`
	PaymentSourceID uuid.UUID       `json:"paymentSourceId" gorm:"type:uuid;not null;index" binding:"required"`
	VehicleID       *uuid.UUID      `json:"vehicleId" gorm:"type:uuid;index"`
	VendorID        *uuid.UUID      `json:"vendorId" gorm:"type:uuid;index"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(18,4);not null"`
	Date            time.Time       `json:"date" gorm:"not null;index" binding:"required"`
	Remarks         string          `json:"remarks" gorm:"type:text" binding:"max=1000"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// Validate checks invariants the binding tags cannot express
func (e *Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return shared.NewInvalidInputError("amount must be positive")
	}
	return nil
}

// ExpenseSchema is the field registry of expenses
var ExpenseSchema = query.NewSchema("date",
	query.F("voucherNo", "voucher_no", query.Searchable, query.Sortable, query.Writable),
	query.F("expenseHeadId", "expense_head_id", query.Filterable, query.Writable),
	query.F("paymentSourceId", "payment_source_id", query.Filterable, query.Writable),
	query.F("vehicleId", "vehicle_id", query.Filterable, query.Writable),
	query.F("vendorId", "vendor_id", query.Filterable, query.Writable),
	query.F("amount", "amount", query.Sortable, query.Writable),
	query.F("date", "date", query.Sortable, query.Writable),
	query.F("remarks", "remarks", query.Searchable, query.Writable),
)

package persistence

import (
	"github.com/erp/backoffice/internal/domain/finance"
	"github.com/erp/backoffice/internal/domain/fleet"
	"github.com/erp/backoffice/internal/domain/inventory"
	"github.com/erp/backoffice/internal/domain/partner"
	"github.com/erp/backoffice/internal/domain/property"
)

// Models returns every persisted record kind, parents before children
func Models() []any {
	return []any{
		&finance.AccountHead{},
		&finance.ExpenseHead{},
		&finance.PaymentMethod{},
		&finance.PaymentSource{},
		&partner.Vendor{},
		&fleet.Vehicle{},
		&finance.Balance{},
		&finance.Expense{},
		&inventory.Asset{},
		&inventory.Carat{},
		&inventory.Jewellery{},
		&property.Building{},
		&property.Flat{},
	}
}

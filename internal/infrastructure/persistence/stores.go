package persistence

import (
	"github.com/erp/backoffice/internal/application/backoffice"
	"github.com/erp/backoffice/internal/domain/finance"
	"github.com/erp/backoffice/internal/domain/fleet"
	"github.com/erp/backoffice/internal/domain/inventory"
	"github.com/erp/backoffice/internal/domain/partner"
	"github.com/erp/backoffice/internal/domain/property"
	"gorm.io/gorm"
)

// NewStores creates the GORM store of every record kind on db
func NewStores(db *gorm.DB) backoffice.Stores {
	return backoffice.Stores{
		AccountHeads:   NewGormStore[finance.AccountHead](db, finance.AccountHeadSchema),
		ExpenseHeads:   NewGormStore[finance.ExpenseHead](db, finance.ExpenseHeadSchema),
		PaymentMethods: NewGormStore[finance.PaymentMethod](db, finance.PaymentMethodSchema),
		PaymentSources: NewGormStore[finance.PaymentSource](db, finance.PaymentSourceSchema),
		Balances:       NewGormStore[finance.Balance](db, finance.BalanceSchema),
		Expenses:       NewGormStore[finance.Expense](db, finance.ExpenseSchema),
		Vendors:        NewGormStore[partner.Vendor](db, partner.VendorSchema),
		Assets:         NewGormStore[inventory.Asset](db, inventory.AssetSchema),
		Carats:         NewGormStore[inventory.Carat](db, inventory.CaratSchema),
		Jewelleries:    NewGormStore[inventory.Jewellery](db, inventory.JewellerySchema),
		Vehicles:       NewGormStore[fleet.Vehicle](db, fleet.VehicleSchema),
		Buildings:      NewGormStore[property.Building](db, property.BuildingSchema),
		Flats:          NewGormStore[property.Flat](db, property.FlatSchema),
	}
}

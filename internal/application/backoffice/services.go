package backoffice

import (
	"github.com/erp/backoffice/internal/application/crud"
	"github.com/erp/backoffice/internal/domain/finance"
	"github.com/erp/backoffice/internal/domain/fleet"
	"github.com/erp/backoffice/internal/domain/inventory"
	"github.com/erp/backoffice/internal/domain/partner"
	"github.com/erp/backoffice/internal/domain/property"
)

// Stores holds the record store of every kind
type Stores struct {
	AccountHeads   crud.Store[finance.AccountHead]
	ExpenseHeads   crud.Store[finance.ExpenseHead]
	PaymentMethods crud.Store[finance.PaymentMethod]
	PaymentSources crud.Store[finance.PaymentSource]
	Balances       crud.Store[finance.Balance]
	Expenses       crud.Store[finance.Expense]
	Vendors        crud.Store[partner.Vendor]
	Assets         crud.Store[inventory.Asset]
	Carats         crud.Store[inventory.Carat]
	Jewelleries    crud.Store[inventory.Jewellery]
	Vehicles       crud.Store[fleet.Vehicle]
	Buildings      crud.Store[property.Building]
	Flats          crud.Store[property.Flat]
}

// Services holds the CRUD service of every kind
type Services struct {
	AccountHeads   *crud.Service[finance.AccountHead]
	ExpenseHeads   *crud.Service[finance.ExpenseHead]
	PaymentMethods *crud.Service[finance.PaymentMethod]
	PaymentSources *crud.Service[finance.PaymentSource]
	Balances       *crud.Service[finance.Balance]
	Expenses       *crud.Service[finance.Expense]
	Vendors        *crud.Service[partner.Vendor]
	Assets         *crud.Service[inventory.Asset]
	Carats         *crud.Service[inventory.Carat]
	Jewelleries    *crud.Service[inventory.Jewellery]
	Vehicles       *crud.Service[fleet.Vehicle]
	Buildings      *crud.Service[property.Building]
	Flats          *crud.Service[property.Flat]
}

// NewServices builds the services of every kind over stores. opts apply to all of them.
func NewServices(stores Stores, opts ...crud.Option) *Services {
	return &Services{
		AccountHeads:   crud.NewService(AccountHeadKind, stores.AccountHeads, opts...),
		ExpenseHeads:   crud.NewService(ExpenseHeadKind, stores.ExpenseHeads, opts...),
		PaymentMethods: crud.NewService(PaymentMethodKind, stores.PaymentMethods, opts...),
		PaymentSources: crud.NewService(PaymentSourceKind, stores.PaymentSources, opts...),
		Balances:       crud.NewService(BalanceKind, stores.Balances, opts...),
		Expenses:       crud.NewService(ExpenseKind, stores.Expenses, opts...),
		Vendors:        crud.NewService(VendorKind, stores.Vendors, opts...),
		Assets:         crud.NewService(AssetKind, stores.Assets, opts...),
		Carats:         crud.NewService(CaratKind, stores.Carats, opts...),
		Jewelleries:    crud.NewService(JewelleryKind, stores.Jewelleries, opts...),
		Vehicles:       crud.NewService(VehicleKind, stores.Vehicles, opts...),
		Buildings:      crud.NewService(BuildingKind, stores.Buildings, opts...),
		Flats:          crud.NewService(FlatKind, stores.Flats, opts...),
	}
}

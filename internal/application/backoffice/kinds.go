// Package backoffice registers the record kinds of the back-office API.
package backoffice

import (
	"github.com/erp/backoffice/internal/application/crud"
	"github.com/erp/backoffice/internal/domain/finance"
	"github.com/erp/backoffice/internal/domain/fleet"
	"github.com/erp/backoffice/internal/domain/inventory"
	"github.com/erp/backoffice/internal/domain/partner"
	"github.com/erp/backoffice/internal/domain/property"
)

var (
	AccountHeadKind = crud.Kind[finance.AccountHead]{
		Name:   "account head",
		Schema: finance.AccountHeadSchema,
		Dependents: []crud.Dependent{
			{Name: "expense head", Table: "expense_heads", Column: "account_head_id"},
		},
	}

	ExpenseHeadKind = crud.Kind[finance.ExpenseHead]{
		Name:   "expense head",
		Schema: finance.ExpenseHeadSchema,
		Dependents: []crud.Dependent{
			{Name: "expense", Table: "expenses", Column: "expense_head_id"},
		},
	}

	PaymentMethodKind = crud.Kind[finance.PaymentMethod]{
		Name:   "payment method",
		Schema: finance.PaymentMethodSchema,
		Dependents: []crud.Dependent{
			{Name: "payment source", Table: "payment_sources", Column: "payment_method_id"},
		},
	}

	PaymentSourceKind = crud.Kind[finance.PaymentSource]{
		Name:   "payment source",
		Schema: finance.PaymentSourceSchema,
		Dependents: []crud.Dependent{
			{Name: "expense", Table: "expenses", Column: "payment_source_id"},
			{Name: "balance", Table: "balances", Column: "payment_source_id"},
		},
	}

	BalanceKind = crud.Kind[finance.Balance]{
		Name:   "balance",
		Schema: finance.BalanceSchema,
	}

	ExpenseKind = crud.Kind[finance.Expense]{
		Name:   "expense",
		Schema: finance.ExpenseSchema,
	}

	VendorKind = crud.Kind[partner.Vendor]{
		Name:   "vendor",
		Schema: partner.VendorSchema,
		Dependents: []crud.Dependent{
			{Name: "asset", Table: "assets", Column: "vendor_id"},
			{Name: "expense", Table: "expenses", Column: "vendor_id"},
		},
		Sequence: &crud.Sequence[partner.Vendor]{
			Prefix: partner.VendorCodePrefix,
			Width:  partner.VendorCodeWidth,
			Field:  "vendorId",
			Assign: func(v *partner.Vendor, code string) { v.VendorID = code },
		},
	}

	AssetKind = crud.Kind[inventory.Asset]{
		Name:   "asset",
		Schema: inventory.AssetSchema,
		Sequence: &crud.Sequence[inventory.Asset]{
			Prefix: inventory.AssetCodePrefix,
			Width:  inventory.AssetCodeWidth,
			Field:  "assetCode",
			Assign: func(a *inventory.Asset, code string) { a.AssetCode = code },
		},
	}

	CaratKind = crud.Kind[inventory.Carat]{
		Name:   "carat",
		Schema: inventory.CaratSchema,
		Dependents: []crud.Dependent{
			{Name: "jewellery", Table: "jewelleries", Column: "carat_id"},
		},
	}

	JewelleryKind = crud.Kind[inventory.Jewellery]{
		Name:   "jewellery",
		Schema: inventory.JewellerySchema,
		Sequence: &crud.Sequence[inventory.Jewellery]{
			Prefix: inventory.JewelleryCodePrefix,
			Width:  inventory.JewelleryCodeWidth,
			Field:  "code",
			Assign: func(j *inventory.Jewellery, code string) { j.Code = code },
		},
	}

	VehicleKind = crud.Kind[fleet.Vehicle]{
		Name:   "vehicle",
		Schema: fleet.VehicleSchema,
		Dependents: []crud.Dependent{
			{Name: "expense", Table: "expenses", Column: "vehicle_id"},
		},
	}

	BuildingKind = crud.Kind[property.Building]{
		Name:   "building",
		Schema: property.BuildingSchema,
		Dependents: []crud.Dependent{
			{Name: "flat", Table: "flats", Column: "building_id"},
		},
	}

	FlatKind = crud.Kind[property.Flat]{
		Name:   "flat",
		Schema: property.FlatSchema,
	}
)

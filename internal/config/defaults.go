package config

import (
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"github.com/shopspring/decimal"
)

// Input field keys, shared by the HTML form, the CLI and the persisted record.
const (
	FieldPrice         = "price"
	FieldRenovation    = "renovation_cost"
	FieldManagementFee = "management_fee"
	FieldPropertyTax   = "property_tax"
	FieldMonthlyRent   = "monthly_rent"
	FieldDiscountRate  = "discount_rate"
	FieldHorizonYears  = "horizon_years"
)

// Fields lists every input field in form order.
var Fields = []string{
	FieldPrice,
	FieldRenovation,
	FieldManagementFee,
	FieldPropertyTax,
	FieldMonthlyRent,
	FieldDiscountRate,
	FieldHorizonYears,
}

// FieldLabels are human readable names used in messages and on the page.
var FieldLabels = map[string]string{
	FieldPrice:         "Purchase price",
	FieldRenovation:    "Renovation cost",
	FieldManagementFee: "Annual management fee",
	FieldPropertyTax:   "Annual property tax",
	FieldMonthlyRent:   "Monthly rent",
	FieldDiscountRate:  "Discount rate (%)",
	FieldHorizonYears:  "Holding period (years)",
}

// FieldHints back the tooltips next to each input.
var FieldHints = map[string]string{
	FieldPrice:         "What you pay for the property.",
	FieldRenovation:    "One-off spend before the property is rented out.",
	FieldManagementFee: "Yearly fee paid to the letting agent.",
	FieldPropertyTax:   "Yearly property tax.",
	FieldMonthlyRent:   "Rent received each month.",
	FieldDiscountRate:  "Yearly rate used to discount future rent. Rates below -99% are treated as -99%.",
	FieldHorizonYears:  "Number of years the property is held.",
}

const (
	// MaxHorizonYears caps the cash-flow table length.
	MaxHorizonYears = 100
	// MinDiscountRatePercent is the floor the NPV calculator applies.
	MinDiscountRatePercent = -99
)

// DefaultInputSet returns the documented default form values.
func DefaultInputSet() domain.InputSet {
	return domain.InputSet{
		Price:               decimal.NewFromInt(260000),
		RenovationCost:      decimal.NewFromInt(17000),
		ManagementFee:       decimal.NewFromInt(2639),
		PropertyTax:         decimal.NewFromInt(3022),
		MonthlyRent:         decimal.NewFromInt(1700),
		DiscountRatePercent: decimal.NewFromInt(2),
		HorizonYears:        30,
	}
}

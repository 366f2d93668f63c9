package domain

import (
	"github.com/shopspring/decimal"
)

// InputSet holds the user-entered financials of a rental property.
// Monetary fields are non-negative; DiscountRatePercent may be negative.
type InputSet struct {
	Price               decimal.Decimal `json:"price" yaml:"price"`
	RenovationCost      decimal.Decimal `json:"renovation_cost" yaml:"renovation_cost"`
	ManagementFee       decimal.Decimal `json:"management_fee" yaml:"management_fee"`           // annual
	PropertyTax         decimal.Decimal `json:"property_tax" yaml:"property_tax"`               // annual
	MonthlyRent         decimal.Decimal `json:"monthly_rent" yaml:"monthly_rent"`
	DiscountRatePercent decimal.Decimal `json:"discount_rate_percent" yaml:"discount_rate_percent"` // 2 means 2%
	HorizonYears        int             `json:"horizon_years" yaml:"horizon_years"`
}

// TotalInvestment is the upfront cash outlay: purchase price plus renovation.
func (in InputSet) TotalInvestment() decimal.Decimal {
	return in.Price.Add(in.RenovationCost)
}

// AnnualCosts is the recurring yearly outflow.
func (in InputSet) AnnualCosts() decimal.Decimal {
	return in.ManagementFee.Add(in.PropertyTax)
}

// Equal reports whether two input sets carry the same values.
func (in InputSet) Equal(other InputSet) bool {
	return in.Price.Equal(other.Price) &&
		in.RenovationCost.Equal(other.RenovationCost) &&
		in.ManagementFee.Equal(other.ManagementFee) &&
		in.PropertyTax.Equal(other.PropertyTax) &&
		in.MonthlyRent.Equal(other.MonthlyRent) &&
		in.DiscountRatePercent.Equal(other.DiscountRatePercent) &&
		in.HorizonYears == other.HorizonYears
}

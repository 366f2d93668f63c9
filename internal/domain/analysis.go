package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Payback is the number of years needed for cumulative net income to repay
// the initial investment. Never is set when the property does not pay back at all.
type Payback struct {
	Years decimal.Decimal
	Never bool
}

// NeverPaysBack is the payback of a property with no positive net income.
func NeverPaysBack() Payback { return Payback{Never: true} }

// PaybackIn returns a finite payback period.
func PaybackIn(years decimal.Decimal) Payback { return Payback{Years: years} }

// MarshalJSON encodes Never as null.
func (p Payback) MarshalJSON() ([]byte, error) {
	if p.Never {
		return []byte("null"), nil
	}
	return json.Marshal(p.Years)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *Payback) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = NeverPaysBack()
		return nil
	}
	var years decimal.Decimal
	if err := json.Unmarshal(b, &years); err != nil {
		return err
	}
	*p = PaybackIn(years)
	return nil
}

// MarshalYAML encodes Never as the string "never".
func (p Payback) MarshalYAML() (interface{}, error) {
	if p.Never {
		return "never", nil
	}
	return p.Years.String(), nil
}

// ROIResult is the output of the ROI calculator.
type ROIResult struct {
	TotalInvestment  decimal.Decimal `json:"total_investment" yaml:"total_investment"`
	AnnualRentIncome decimal.Decimal `json:"annual_rent_income" yaml:"annual_rent_income"`
	AnnualCosts      decimal.Decimal `json:"annual_costs" yaml:"annual_costs"`
	AnnualNetIncome  decimal.Decimal `json:"annual_net_income" yaml:"annual_net_income"`
	ROIPercent       decimal.Decimal `json:"roi_percent" yaml:"roi_percent"`
	Payback          Payback         `json:"payback_years" yaml:"payback_years"`
}

// CashFlowRow is one year of the discounted cash-flow table. Year 0 is the purchase.
type CashFlowRow struct {
	Year                   int             `json:"year" yaml:"year"`
	NetCashFlow            decimal.Decimal `json:"net_cash_flow" yaml:"net_cash_flow"`
	DiscountFactor         decimal.Decimal `json:"discount_factor" yaml:"discount_factor"`
	PresentValue           decimal.Decimal `json:"present_value" yaml:"present_value"`
	CumulativePresentValue decimal.Decimal `json:"cumulative_present_value" yaml:"cumulative_present_value"`
}

// NPVResult is the output of the NPV calculator.
type NPVResult struct {
	NetPresentValue     decimal.Decimal `json:"net_present_value" yaml:"net_present_value"`
	Rows                []CashFlowRow   `json:"rows" yaml:"rows"`
	DiscountRatePercent decimal.Decimal `json:"discount_rate_percent" yaml:"discount_rate_percent"`
	HorizonYears        int             `json:"horizon_years" yaml:"horizon_years"`

	// Display only: first year whose cumulative present value is non-negative.
	BreakevenYear *int `json:"breakeven_year,omitempty" yaml:"breakeven_year,omitempty"`
}

// IsBreakeven reports whether year is the highlighted breakeven year.
func (r NPVResult) IsBreakeven(year int) bool {
	return r.BreakevenYear != nil && *r.BreakevenYear == year
}

// Analysis bundles one run of both calculators with the inputs that produced it.
type Analysis struct {
	Inputs InputSet  `json:"inputs" yaml:"inputs"`
	ROI    ROIResult `json:"roi" yaml:"roi"`
	NPV    NPVResult `json:"npv" yaml:"npv"`
}

package calculation

import (
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	money "github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MinDiscountRate floors the effective discount rate so (1+r)^t never reaches zero.
var MinDiscountRate = decimal.NewFromFloat(-0.99)

// EffectiveDiscountRate converts a percentage into a fraction, floored at MinDiscountRate.
func EffectiveDiscountRate(percent decimal.Decimal) decimal.Decimal {
	return decimal.Max(MinDiscountRate, percent.Div(hundred))
}

// CalculateNPV builds the discounted cash-flow table for the holding period.
// Row 0 is the purchase (the whole investment, undiscounted); every later year
// receives the same net rent discounted by 1/(1+r)^t.
func CalculateNPV(in domain.InputSet) domain.NPVResult {
	r := EffectiveDiscountRate(in.DiscountRatePercent)
	horizon := in.HorizonYears
	if horizon < 1 {
		horizon = 1
	}

	netAnnual := money.NewMoneyFromDecimal(in.MonthlyRent).Annual().
		Sub(money.NewMoneyFromDecimal(in.AnnualCosts())).Decimal
	initial := in.TotalInvestment().Neg()

	rows := make([]domain.CashFlowRow, 0, horizon+1)
	rows = append(rows, domain.CashFlowRow{
		Year:                   0,
		NetCashFlow:            initial,
		DiscountFactor:         one,
		PresentValue:           initial,
		CumulativePresentValue: initial,
	})

	cumulative := initial
	growth := one
	base := one.Add(r)
	for t := 1; t <= horizon; t++ {
		// growth stays exact; only the reciprocal is rounded.
		growth = growth.Mul(base)
		factor := one.DivRound(growth, DivisionPrecision)
		pv := netAnnual.Mul(factor)
		cumulative = cumulative.Add(pv)
		rows = append(rows, domain.CashFlowRow{
			Year:                   t,
			NetCashFlow:            netAnnual,
			DiscountFactor:         factor,
			PresentValue:           pv,
			CumulativePresentValue: cumulative,
		})
	}

	result := domain.NPVResult{
		NetPresentValue:     cumulative,
		Rows:                rows,
		DiscountRatePercent: in.DiscountRatePercent,
		HorizonYears:        horizon,
	}
	if year, ok := BreakevenYear(rows); ok {
		result.BreakevenYear = &year
	}
	return result
}

package calculation

import (
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	money "github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CalculateROI computes the simple annual return of a rental property.
// ROIPercent is zero when nothing was invested, and Payback is Never unless
// the annual net income is strictly positive.
func CalculateROI(in domain.InputSet) domain.ROIResult {
	total := money.NewMoneyFromDecimal(in.TotalInvestment())
	income := money.NewMoneyFromDecimal(in.MonthlyRent).Annual()
	costs := money.NewMoneyFromDecimal(in.AnnualCosts())
	net := income.Sub(costs)

	payback := domain.NeverPaysBack()
	if net.IsPositive() {
		payback = domain.PaybackIn(total.Decimal.DivRound(net.Decimal, DivisionPrecision))
	}

	return domain.ROIResult{
		TotalInvestment:  total.Decimal,
		AnnualRentIncome: income.Decimal,
		AnnualCosts:      costs.Decimal,
		AnnualNetIncome:  net.Decimal,
		ROIPercent:       net.PercentOf(total).Round(DivisionPrecision),
		Payback:          payback,
	}
}

// DivisionPrecision is the number of decimal places kept by every division.
const DivisionPrecision int32 = 16

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

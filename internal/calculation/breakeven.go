package calculation

import (
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakevenYear returns the first year whose cumulative present value is
// non-negative. A property bought for nothing breaks even in year 0.
func BreakevenYear(rows []domain.CashFlowRow) (int, bool) {
	for _, row := range rows {
		if !row.CumulativePresentValue.IsNegative() {
			return row.Year, true
		}
	}
	return 0, false
}

// Totals sums the undiscounted net cash flow and the present value of every row.
// The present value total equals the net present value.
func Totals(rows []domain.CashFlowRow) (netCashFlow, presentValue decimal.Decimal) {
	for _, row := range rows {
		netCashFlow = netCashFlow.Add(row.NetCashFlow)
		presentValue = presentValue.Add(row.PresentValue)
	}
	return netCashFlow, presentValue
}

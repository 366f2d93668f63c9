package output

import (
	"strconv"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	money "github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/pkg/decimal"
	"github.com/shopspring/decimal"
)

// PaybackNever is printed instead of a number when a property never pays back.
const PaybackNever = "Never"

// FormatCurrency formats a decimal as USD with thousands separators and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatFactor formats a discount factor with 4 decimals.
func FormatFactor(f decimal.Decimal) string { return f.StringFixed(4) }

// FormatPayback renders the payback period, or PaybackNever.
func FormatPayback(p domain.Payback) string {
	if p.Never {
		return PaybackNever
	}
	return p.Years.StringFixed(2) + " years"
}

// FormatBreakeven renders the breakeven year, or "-" when the horizon ends first.
func FormatBreakeven(year *int) string {
	if year == nil {
		return "-"
	}
	return "Year " + strconv.Itoa(*year)
}

func intToString(i int) string { return strconv.Itoa(i) }

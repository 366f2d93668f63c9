package output

import (
	"fmt"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/calculation"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"github.com/shopspring/decimal"
)

// GenerateAssumptions lists the modeling assumptions behind an analysis.
func GenerateAssumptions(in domain.InputSet) []string {
	effective := calculation.EffectiveDiscountRate(in.DiscountRatePercent).Mul(decimalHundred)
	rate := fmt.Sprintf("Discount rate: %s per year", FormatPercentage(in.DiscountRatePercent))
	if !effective.Equal(in.DiscountRatePercent) {
		rate += fmt.Sprintf(" (floored to %s)", FormatPercentage(effective))
	}
	return []string{
		fmt.Sprintf("Rent of %s per month is received every month for %d years", FormatCurrency(in.MonthlyRent), in.HorizonYears),
		fmt.Sprintf("Management fee and property tax stay at %s per year", FormatCurrency(in.AnnualCosts())),
		rate,
		"Purchase and renovation are paid in full in year 0",
		"No financing, vacancy, appreciation or resale value is modeled",
	}
}

var decimalHundred = decimal.NewFromInt(100)

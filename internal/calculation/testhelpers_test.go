package calculation

import (
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"github.com/shopspring/decimal"
)

// exampleInputs is the worked example from the tool's default form values.
func exampleInputs() domain.InputSet {
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

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

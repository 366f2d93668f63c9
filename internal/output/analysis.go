package output

import (
	"fmt"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
)

// Verdict is the one-line reading of an analysis shown above every report.
type Verdict struct {
	Positive bool
	Headline string
}

// AnalyzeResults judges the investment by its NPV: a non-negative NPV means the
// rent beats the discount rate over the holding period.
func AnalyzeResults(a *domain.Analysis) Verdict {
	npv := a.NPV
	rate := FormatPercentage(npv.DiscountRatePercent)
	if npv.NetPresentValue.IsNegative() {
		return Verdict{
			Positive: false,
			Headline: fmt.Sprintf("Does not break even within %d years at a %s discount rate (NPV %s).",
				npv.HorizonYears, rate, FormatCurrency(npv.NetPresentValue)),
		}
	}
	year := 0
	if npv.BreakevenYear != nil {
		year = *npv.BreakevenYear
	}
	return Verdict{
		Positive: true,
		Headline: fmt.Sprintf("Breaks even in year %d and returns an NPV of %s at a %s discount rate.",
			year, FormatCurrency(npv.NetPresentValue), rate),
	}
}

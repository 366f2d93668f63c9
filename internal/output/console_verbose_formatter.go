package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/calculation"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"github.com/shopspring/decimal"
)

// sensitivitySteps are the offsets, in percentage points, applied to the
// discount rate for the sensitivity table.
var sensitivitySteps = []int64{-2, -1, 0, 1, 2}

// ConsoleVerboseFormatter renders the detailed console report: inputs,
// assumptions, the full cash-flow breakdown and a discount-rate sensitivity table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(a *domain.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	rule := strings.Repeat("=", 72)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "DETAILED REAL ESTATE INVESTMENT ANALYSIS")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INPUTS:")
	in := a.Inputs
	fmt.Fprintf(&buf, "  Purchase price:         %s\n", FormatCurrency(in.Price))
	fmt.Fprintf(&buf, "  Renovation cost:        %s\n", FormatCurrency(in.RenovationCost))
	fmt.Fprintf(&buf, "  Management fee (yr):    %s\n", FormatCurrency(in.ManagementFee))
	fmt.Fprintf(&buf, "  Property tax (yr):      %s\n", FormatCurrency(in.PropertyTax))
	fmt.Fprintf(&buf, "  Monthly rent:           %s\n", FormatCurrency(in.MonthlyRent))
	fmt.Fprintf(&buf, "  Discount rate:          %s\n", FormatPercentage(in.DiscountRatePercent))
	fmt.Fprintf(&buf, "  Holding period:         %d years\n", in.HorizonYears)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, line := range GenerateAssumptions(in) {
		fmt.Fprintf(&buf, "• %s\n", line)
	}
	fmt.Fprintln(&buf)

	summary, err := ConsoleFormatter{}.Format(a)
	if err != nil {
		return nil, err
	}
	buf.Write(summary)
	fmt.Fprintln(&buf)

	netFlow, pv := calculation.Totals(a.NPV.Rows)
	fmt.Fprintln(&buf, "TOTALS OVER THE HOLDING PERIOD:")
	fmt.Fprintf(&buf, "  Undiscounted net cash flow: %s\n", FormatCurrency(netFlow))
	fmt.Fprintf(&buf, "  Discounted (NPV):           %s\n", FormatCurrency(pv))
	fmt.Fprintf(&buf, "  Lost to discounting:        %s\n", FormatCurrency(netFlow.Sub(pv)))
	fmt.Fprintln(&buf)

	writeSensitivity(&buf, in)
	return buf.Bytes(), nil
}

// writeSensitivity recomputes the NPV around the chosen discount rate.
func writeSensitivity(buf *bytes.Buffer, in domain.InputSet) {
	fmt.Fprintln(buf, "DISCOUNT RATE SENSITIVITY:")
	fmt.Fprintf(buf, "  %-12s %18s  %s\n", "Rate", "NPV", "Breakeven")
	for _, step := range sensitivitySteps {
		scenario := in
		scenario.DiscountRatePercent = in.DiscountRatePercent.Add(decimal.NewFromInt(step))
		npv := calculation.CalculateNPV(scenario)
		marker := ""
		if step == 0 {
			marker = "  <- chosen"
		}
		fmt.Fprintf(buf, "  %-12s %18s  %s%s\n",
			FormatPercentage(scenario.DiscountRatePercent),
			FormatCurrency(npv.NetPresentValue),
			FormatBreakeven(npv.BreakevenYear),
			marker)
	}
}

package output

import (
	"bytes"
	"fmt"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// ConsoleFormatter prints a summary block followed by the cash-flow table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(a *domain.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	roi := a.ROI
	npv := a.NPV

	fmt.Fprintln(&buf, "REAL ESTATE INVESTMENT SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Total investment:    %s\n", FormatCurrency(roi.TotalInvestment))
	fmt.Fprintf(&buf, "Annual rent income:  %s\n", FormatCurrency(roi.AnnualRentIncome))
	fmt.Fprintf(&buf, "Annual costs:        %s\n", FormatCurrency(roi.AnnualCosts))
	fmt.Fprintf(&buf, "Annual net income:   %s\n", FormatCurrency(roi.AnnualNetIncome))
	fmt.Fprintf(&buf, "ROI:                 %s\n", FormatPercentage(roi.ROIPercent))
	fmt.Fprintf(&buf, "Payback period:      %s\n", FormatPayback(roi.Payback))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Net present value:   %s (%s over %d years)\n",
		FormatCurrency(npv.NetPresentValue), FormatPercentage(npv.DiscountRatePercent), npv.HorizonYears)
	fmt.Fprintf(&buf, "Breakeven:           %s\n", FormatBreakeven(npv.BreakevenYear))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, AnalyzeResults(a).Headline)
	fmt.Fprintln(&buf)

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Year", "Net Cash Flow", "Discount Factor", "Present Value", "Cumulative PV"})
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, // Year
		tablewriter.ALIGN_RIGHT, // Net Cash Flow
		tablewriter.ALIGN_RIGHT, // Discount Factor
		tablewriter.ALIGN_RIGHT, // Present Value
		tablewriter.ALIGN_RIGHT, // Cumulative PV
	})
	for _, row := range npv.Rows {
		year := intToString(row.Year)
		if npv.IsBreakeven(row.Year) {
			year += " *"
		}
		table.Append([]string{
			year,
			FormatCurrency(row.NetCashFlow),
			FormatFactor(row.DiscountFactor),
			FormatCurrency(row.PresentValue),
			FormatCurrency(row.CumulativePresentValue),
		})
	}
	table.SetFooter([]string{"NPV", "", "", "", FormatCurrency(npv.NetPresentValue)})
	table.Render()

	if npv.BreakevenYear != nil {
		fmt.Fprintln(&buf, "* first year with a non-negative cumulative present value")
	}
	return buf.Bytes(), nil
}

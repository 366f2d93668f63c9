package main

import (
	"fmt"
	"os"

	calc "github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/calculation"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/config"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/output"
	"github.com/shopspring/decimal"
)

// Prints NPV and the breakeven year across a range of discount rates.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <input-file>")
		return
	}
	p := config.NewInputParser()
	in, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	roi := calc.CalculateROI(*in)
	fmt.Printf("investment %s, net income %s, payback %s\n",
		output.FormatCurrency(roi.TotalInvestment), output.FormatCurrency(roi.AnnualNetIncome), output.FormatPayback(roi.Payback))
	fmt.Printf("%8s  %16s  %10s\n", "rate", "npv", "breakeven")
	for rate := -2; rate <= 12; rate++ {
		sweep := *in
		sweep.DiscountRatePercent = decimal.NewFromInt(int64(rate))
		npv := calc.CalculateNPV(sweep)
		fmt.Printf("%8s  %16s  %10s\n",
			output.FormatPercentage(sweep.DiscountRatePercent),
			output.FormatCurrency(npv.NetPresentValue),
			output.FormatBreakeven(npv.BreakevenYear))
	}
}

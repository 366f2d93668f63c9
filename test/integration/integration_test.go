package integration

import (
	"context"
	"testing"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/calculation"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	in, err := parser.LoadFromFile("../testdata/example_property.yaml")
	require.NoError(t, err)
	assert.True(t, in.Equal(config.DefaultInputSet()))

	engine := calculation.NewCalculationEngine()
	results, err := engine.Analyze(context.Background(), *in)
	require.NoError(t, err)

	assert.True(t, results.ROI.TotalInvestment.Equal(decimal.NewFromInt(277000)))
	assert.True(t, results.ROI.AnnualNetIncome.Equal(decimal.NewFromInt(14739)))
	assert.Equal(t, "5.32", results.ROI.ROIPercent.StringFixed(2))
	assert.Equal(t, "18.79", results.ROI.Payback.Years.StringFixed(2))

	rows := results.NPV.Rows
	require.Len(t, rows, 31)
	assert.True(t, rows[0].NetCashFlow.Equal(decimal.NewFromInt(-277000)))
	assert.True(t, rows[0].DiscountFactor.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "0.9804", rows[1].DiscountFactor.StringFixed(4))
	assert.Equal(t, "14449.02", rows[1].PresentValue.StringFixed(2))

	_, pv := calculation.Totals(rows)
	assert.True(t, pv.Equal(results.NPV.NetPresentValue))
}

func TestCoercedFormInputMatchesFile(t *testing.T) {
	fromFile, err := config.NewInputParser().LoadFromFile("../testdata/example_property.yaml")
	require.NoError(t, err)

	fromForm, issues := config.Coerce(config.RawInput{
		config.FieldPrice:         "260,000",
		config.FieldRenovation:    "17000",
		config.FieldManagementFee: "2639",
		config.FieldPropertyTax:   "3022",
		config.FieldMonthlyRent:   "$1,700",
		config.FieldDiscountRate:  "2%",
		config.FieldHorizonYears:  "30",
	})
	assert.Empty(t, issues)
	assert.True(t, fromForm.Equal(*fromFile))
}

func TestExtremeDiscountRateStaysFinite(t *testing.T) {
	in := config.DefaultInputSet()
	in.DiscountRatePercent = decimal.NewFromInt(-150)

	results, err := calculation.NewCalculationEngine().Analyze(context.Background(), in)
	require.NoError(t, err)
	last := results.NPV.Rows[len(results.NPV.Rows)-1]
	assert.True(t, last.DiscountFactor.Equal(decimal.New(1, 60)))
	assert.True(t, results.NPV.NetPresentValue.IsPositive())
}

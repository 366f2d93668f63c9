package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateNPV_Example(t *testing.T) {
	res := CalculateNPV(exampleInputs())

	require.Len(t, res.Rows, 31)
	assert.Equal(t, 30, res.HorizonYears)
	assert.True(t, res.DiscountRatePercent.Equal(dec("2")))

	row0 := res.Rows[0]
	assert.Equal(t, 0, row0.Year)
	assert.True(t, row0.NetCashFlow.Equal(dec("-277000")))
	assert.True(t, row0.DiscountFactor.Equal(decimal.NewFromInt(1)))
	assert.True(t, row0.PresentValue.Equal(dec("-277000")))

	row1 := res.Rows[1]
	assert.Equal(t, "0.9804", row1.DiscountFactor.StringFixed(4))
	assert.Equal(t, "14449.02", row1.PresentValue.StringFixed(2))
	assert.True(t, row1.NetCashFlow.Equal(dec("14739")))

	assert.Equal(t, "53101.36", res.NetPresentValue.StringFixed(2))
	require.NotNil(t, res.BreakevenYear)
	assert.Equal(t, 24, *res.BreakevenYear)
	assert.True(t, res.IsBreakeven(24))
	assert.False(t, res.IsBreakeven(23))
}

func TestCalculateNPV_RowsOrderedAndCumulative(t *testing.T) {
	res := CalculateNPV(exampleInputs())

	running := decimal.Zero
	for i, row := range res.Rows {
		assert.Equal(t, i, row.Year)
		running = running.Add(row.PresentValue)
		assert.True(t, row.CumulativePresentValue.Equal(running), "year %d cumulative %s want %s", i, row.CumulativePresentValue, running)
	}

	_, pv := Totals(res.Rows)
	assert.True(t, pv.Equal(res.NetPresentValue))
	assert.True(t, res.Rows[len(res.Rows)-1].CumulativePresentValue.Equal(res.NetPresentValue))
}

func TestCalculateNPV_ZeroDiscount(t *testing.T) {
	in := exampleInputs()
	in.DiscountRatePercent = decimal.Zero
	res := CalculateNPV(in)

	assert.True(t, res.NetPresentValue.Equal(dec("165170")), "npv %s", res.NetPresentValue)
	for _, row := range res.Rows {
		assert.True(t, row.DiscountFactor.Equal(decimal.NewFromInt(1)))
	}
	require.NotNil(t, res.BreakevenYear)
	assert.Equal(t, 19, *res.BreakevenYear)

	net, _ := Totals(res.Rows)
	assert.True(t, net.Equal(res.NetPresentValue))
}

func TestCalculateNPV_HorizonFloor(t *testing.T) {
	for _, years := range []int{0, -5} {
		in := exampleInputs()
		in.HorizonYears = years
		res := CalculateNPV(in)
		assert.Equal(t, 1, res.HorizonYears)
		assert.Len(t, res.Rows, 2)
	}
}

func TestCalculateNPV_DiscountRateFloor(t *testing.T) {
	assert.True(t, EffectiveDiscountRate(dec("-150")).Equal(dec("-0.99")))
	assert.True(t, EffectiveDiscountRate(dec("-99")).Equal(dec("-0.99")))
	assert.True(t, EffectiveDiscountRate(dec("-50")).Equal(dec("-0.5")))
	assert.True(t, EffectiveDiscountRate(dec("2")).Equal(dec("0.02")))

	in := exampleInputs()
	in.DiscountRatePercent = dec("-150")
	res := CalculateNPV(in)
	require.Len(t, res.Rows, 31)
	// 1/(0.01)^t
	assert.True(t, res.Rows[1].DiscountFactor.Equal(dec("100")))
	assert.True(t, res.Rows[30].DiscountFactor.Equal(dec("1e60")))
	assert.True(t, res.DiscountRatePercent.Equal(dec("-150")))
}

func TestCalculateNPV_NeverBreaksEven(t *testing.T) {
	in := exampleInputs()
	in.MonthlyRent = dec("100")
	res := CalculateNPV(in)
	assert.Nil(t, res.BreakevenYear)
	assert.True(t, res.NetPresentValue.IsNegative())
}

func TestBreakevenYear(t *testing.T) {
	_, ok := BreakevenYear(nil)
	assert.False(t, ok)

	in := exampleInputs()
	in.Price = decimal.Zero
	in.RenovationCost = decimal.Zero
	year, ok := BreakevenYear(CalculateNPV(in).Rows)
	assert.True(t, ok)
	assert.Equal(t, 0, year)
}

func TestCalculateNPV_Deterministic(t *testing.T) {
	a := CalculateNPV(exampleInputs())
	b := CalculateNPV(exampleInputs())
	require.Equal(t, len(a.Rows), len(b.Rows))
	for i := range a.Rows {
		assert.True(t, a.Rows[i].PresentValue.Equal(b.Rows[i].PresentValue))
	}
}

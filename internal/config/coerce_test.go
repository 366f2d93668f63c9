package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce_EmptyRawUsesDefaults(t *testing.T) {
	in, issues := Coerce(nil)
	assert.Empty(t, issues)
	assert.True(t, in.Equal(DefaultInputSet()))
}

func TestCoerce_ValidValues(t *testing.T) {
	in, issues := Coerce(RawInput{
		FieldPrice:         "$300,000",
		FieldRenovation:    " 0 ",
		FieldManagementFee: "1_200",
		FieldPropertyTax:   "2500.50",
		FieldMonthlyRent:   "2000",
		FieldDiscountRate:  "-3.5%",
		FieldHorizonYears:  "12.9",
	})
	require.Empty(t, issues)
	assert.True(t, in.Price.Equal(decimal.NewFromInt(300000)))
	assert.True(t, in.RenovationCost.IsZero())
	assert.True(t, in.ManagementFee.Equal(decimal.NewFromInt(1200)))
	assert.True(t, in.PropertyTax.Equal(decimal.RequireFromString("2500.5")))
	assert.True(t, in.MonthlyRent.Equal(decimal.NewFromInt(2000)))
	assert.True(t, in.DiscountRatePercent.Equal(decimal.RequireFromString("-3.5")))
	assert.Equal(t, 12, in.HorizonYears)
}

func TestCoerce_InvalidFallsBackPerField(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"empty price", FieldPrice, ""},
		{"text rent", FieldMonthlyRent, "lots"},
		{"NaN tax", FieldPropertyTax, "NaN"},
		{"infinite fee", FieldManagementFee, "Inf"},
		{"overflow renovation", FieldRenovation, "1e400"},
		{"negative price", FieldPrice, "-1"},
		{"garbage discount", FieldDiscountRate, "two"},
		{"zero years", FieldHorizonYears, "0"},
		{"fractional years below one", FieldHorizonYears, "0.5"},
		{"negative years", FieldHorizonYears, "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, issues := Coerce(RawInput{tt.field: tt.value, FieldMonthlyRent + "_unused": "x"})
			require.Len(t, issues, 1)
			assert.Equal(t, tt.field, issues[0].Field)
			assert.Equal(t, tt.value, issues[0].Value)
			assert.Contains(t, issues[0].Message, "using default")
			assert.True(t, in.Equal(DefaultInputSet()), "field %s should fall back to its default", tt.field)
		})
	}
}

func TestCoerce_OnlyBadFieldIsReplaced(t *testing.T) {
	in, issues := Coerce(RawInput{FieldPrice: "100000", FieldMonthlyRent: "abc"})
	require.Len(t, issues, 1)
	assert.True(t, in.Price.Equal(decimal.NewFromInt(100000)))
	assert.True(t, in.MonthlyRent.Equal(DefaultInputSet().MonthlyRent))
}

func TestCoerce_DiscountBelowFloorIsKeptWithNotice(t *testing.T) {
	in, issues := Coerce(RawInput{FieldDiscountRate: "-150"})
	require.Len(t, issues, 1)
	assert.Equal(t, FieldDiscountRate, issues[0].Field)
	assert.True(t, in.DiscountRatePercent.Equal(decimal.NewFromInt(-150)))
}

func TestCoerce_HorizonCapped(t *testing.T) {
	in, issues := Coerce(RawInput{FieldHorizonYears: "500"})
	require.Len(t, issues, 1)
	assert.Equal(t, MaxHorizonYears, in.HorizonYears)
}

func TestCoerceOnto_KeepsBaseForAbsentFields(t *testing.T) {
	base := DefaultInputSet()
	base.MonthlyRent = decimal.NewFromInt(2500)
	base.HorizonYears = 10

	in, issues := CoerceOnto(base, RawInput{FieldPrice: "200000"})
	assert.Empty(t, issues)
	assert.True(t, in.MonthlyRent.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 10, in.HorizonYears)
	assert.True(t, in.Price.Equal(decimal.NewFromInt(200000)))

	// invalid text falls back to the field default, not the base value
	in, issues = CoerceOnto(base, RawInput{FieldHorizonYears: "x"})
	require.Len(t, issues, 1)
	assert.Equal(t, 30, in.HorizonYears)
}

func TestFromInputSet_RoundTrip(t *testing.T) {
	want := DefaultInputSet()
	want.DiscountRatePercent = decimal.RequireFromString("-2.25")
	got, issues := Coerce(FromInputSet(want))
	assert.Empty(t, issues)
	assert.True(t, got.Equal(want))
}

func TestIssueString(t *testing.T) {
	i := Issue{Field: FieldMonthlyRent, Value: "x", Message: "is required"}
	assert.Equal(t, "Monthly rent: is required", i.String())
}

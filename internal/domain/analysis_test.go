package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPaybackJSON(t *testing.T) {
	b, err := json.Marshal(NeverPaysBack())
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = json.Marshal(PaybackIn(decimal.RequireFromString("18.79")))
	require.NoError(t, err)
	assert.Equal(t, `"18.79"`, string(b))

	var p Payback
	require.NoError(t, json.Unmarshal([]byte("null"), &p))
	assert.True(t, p.Never)
	require.NoError(t, json.Unmarshal([]byte(`"4.5"`), &p))
	assert.False(t, p.Never)
	assert.True(t, p.Years.Equal(decimal.RequireFromString("4.5")))
}

func TestROIResultJSON_NeverPayback(t *testing.T) {
	b, err := json.Marshal(ROIResult{Payback: NeverPaysBack()})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"payback_years":null`)
}

func TestPaybackYAML(t *testing.T) {
	b, err := yaml.Marshal(struct {
		P Payback `yaml:"p"`
	}{NeverPaysBack()})
	require.NoError(t, err)
	assert.Equal(t, "p: never\n", string(b))
}

func TestInputSetDerived(t *testing.T) {
	in := InputSet{
		Price:          decimal.NewFromInt(260000),
		RenovationCost: decimal.NewFromInt(17000),
		ManagementFee:  decimal.NewFromInt(2639),
		PropertyTax:    decimal.NewFromInt(3022),
		HorizonYears:   30,
	}
	assert.True(t, in.TotalInvestment().Equal(decimal.NewFromInt(277000)))
	assert.True(t, in.AnnualCosts().Equal(decimal.NewFromInt(5661)))

	other := in
	assert.True(t, in.Equal(other))
	other.HorizonYears = 10
	assert.False(t, in.Equal(other))
}

func TestTheme(t *testing.T) {
	th, err := ParseTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)
	assert.Equal(t, ThemeLight, th.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())

	_, err = ParseTheme("solarized")
	assert.Error(t, err)
	assert.Equal(t, "light", DefaultTheme.String())
}

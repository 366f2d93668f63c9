package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"github.com/shopspring/decimal"
)

// RawInput maps field keys to the text a user typed.
type RawInput map[string]string

// Issue describes a field value that could not be used as entered.
type Issue struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", FieldLabels[i.Field], i.Message)
}

// Coerce turns raw text into an InputSet, starting from the defaults.
func Coerce(raw RawInput) (domain.InputSet, []Issue) {
	return CoerceOnto(DefaultInputSet(), raw)
}

// CoerceOnto applies raw onto base. Fields absent from raw keep their base value.
// Fields present but empty, unparsable, non-finite or negative fall back to the
// field's default and are reported as issues; the result is always usable.
func CoerceOnto(base domain.InputSet, raw RawInput) (domain.InputSet, []Issue) {
	defaults := DefaultInputSet()
	out := base
	var issues []Issue

	money := []struct {
		field string
		dst   *decimal.Decimal
		def   decimal.Decimal
	}{
		{FieldPrice, &out.Price, defaults.Price},
		{FieldRenovation, &out.RenovationCost, defaults.RenovationCost},
		{FieldManagementFee, &out.ManagementFee, defaults.ManagementFee},
		{FieldPropertyTax, &out.PropertyTax, defaults.PropertyTax},
		{FieldMonthlyRent, &out.MonthlyRent, defaults.MonthlyRent},
	}
	for _, m := range money {
		text, ok := raw[m.field]
		if !ok {
			continue
		}
		v, err := parseNumber(text)
		if err == nil && v.IsNegative() {
			err = fmt.Errorf("cannot be negative")
		}
		if err != nil {
			issues = append(issues, fallback(m.field, text, err, m.def.String()))
			*m.dst = m.def
			continue
		}
		*m.dst = v
	}

	if text, ok := raw[FieldDiscountRate]; ok {
		v, err := parseNumber(text)
		switch {
		case err != nil:
			issues = append(issues, fallback(FieldDiscountRate, text, err, defaults.DiscountRatePercent.String()))
			out.DiscountRatePercent = defaults.DiscountRatePercent
		default:
			out.DiscountRatePercent = v
			if v.LessThan(decimal.NewFromInt(MinDiscountRatePercent)) {
				issues = append(issues, Issue{
					Field:   FieldDiscountRate,
					Value:   text,
					Message: fmt.Sprintf("discounting uses %d%% for rates below %d%%", MinDiscountRatePercent, MinDiscountRatePercent),
				})
			}
		}
	}

	if text, ok := raw[FieldHorizonYears]; ok {
		v, err := parseNumber(text)
		if err == nil && v.LessThan(decimal.NewFromInt(1)) {
			err = fmt.Errorf("must be at least 1")
		}
		switch {
		case err != nil:
			issues = append(issues, fallback(FieldHorizonYears, text, err, strconv.Itoa(defaults.HorizonYears)))
			out.HorizonYears = defaults.HorizonYears
		case v.GreaterThan(decimal.NewFromInt(MaxHorizonYears)):
			issues = append(issues, Issue{
				Field:   FieldHorizonYears,
				Value:   text,
				Message: fmt.Sprintf("capped at %d years", MaxHorizonYears),
			})
			out.HorizonYears = MaxHorizonYears
		default:
			out.HorizonYears = int(v.Floor().IntPart())
		}
	}

	return out, issues
}

// FromInputSet renders an InputSet back to raw text, e.g. to pre-fill a form.
func FromInputSet(in domain.InputSet) RawInput {
	return RawInput{
		FieldPrice:         in.Price.String(),
		FieldRenovation:    in.RenovationCost.String(),
		FieldManagementFee: in.ManagementFee.String(),
		FieldPropertyTax:   in.PropertyTax.String(),
		FieldMonthlyRent:   in.MonthlyRent.String(),
		FieldDiscountRate:  in.DiscountRatePercent.String(),
		FieldHorizonYears:  strconv.Itoa(in.HorizonYears),
	}
}

func fallback(field, text string, err error, def string) Issue {
	return Issue{
		Field:   field,
		Value:   text,
		Message: fmt.Sprintf("%v; using default %s", err, def),
	}
}

// parseNumber accepts plain decimals plus the usual decorations people type
// ("$1,700", "2%", "1_000"). NaN and infinities are rejected.
func parseNumber(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.NewReplacer(",", "", "_", "", " ", "").Replace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("is required")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%q is not a finite number", text)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a finite number", text)
	}
	return d, nil
}

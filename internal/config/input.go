package config

import (
	"fmt"
	"os"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of property input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an input set from a YAML (or JSON) file. Fields missing
// from the file keep their default value.
func (ip *InputParser) LoadFromFile(filename string) (*domain.InputSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates an input set document.
func (ip *InputParser) Parse(data []byte) (*domain.InputSet, error) {
	in := DefaultInputSet()
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInputSet(&in); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &in, nil
}

// SaveToFile writes an input set as YAML.
func (ip *InputParser) SaveToFile(in *domain.InputSet, filename string) error {
	b, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode inputs: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidateInputSet rejects values the form would have replaced with defaults.
// Files are explicit, so they are validated strictly instead of coerced.
func (ip *InputParser) ValidateInputSet(in *domain.InputSet) error {
	nonNegative := []struct {
		name  string
		value decimal.Decimal
	}{
		{"price", in.Price},
		{"renovation cost", in.RenovationCost},
		{"management fee", in.ManagementFee},
		{"property tax", in.PropertyTax},
		{"monthly rent", in.MonthlyRent},
	}
	for _, f := range nonNegative {
		if f.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", f.name)
		}
	}
	if in.HorizonYears < 1 || in.HorizonYears > MaxHorizonYears {
		return fmt.Errorf("horizon years must be between 1 and %d", MaxHorizonYears)
	}
	return nil
}

// CreateExampleInputSet returns the documented example property.
func (ip *InputParser) CreateExampleInputSet() *domain.InputSet {
	in := DefaultInputSet()
	return &in
}

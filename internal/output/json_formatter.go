package output

import (
	"encoding/json"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter serializes the analysis as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(a *domain.Analysis) ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

// YAMLFormatter serializes the analysis as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(a *domain.Analysis) ([]byte, error) {
	return yaml.Marshal(a)
}

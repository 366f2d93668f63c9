package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

// TemplateFuncs are the helpers shared by every HTML template rendering an analysis.
var TemplateFuncs = template.FuncMap{
	"curr":      FormatCurrency,
	"pct":       FormatPercentage,
	"factor":    FormatFactor,
	"payback":   FormatPayback,
	"breakeven": FormatBreakeven,
}

var htmlTemplate = template.Must(template.New("report").Funcs(TemplateFuncs).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(a *domain.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Analysis
		Verdict     Verdict
		Assumptions []string
	}{a, AnalyzeResults(a), GenerateAssumptions(a.Inputs)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

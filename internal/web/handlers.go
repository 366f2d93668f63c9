package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/config"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/output"
)

// Page tabs.
const (
	TabROI = "roi"
	TabNPV = "npv"
)

type fieldView struct {
	Key   string
	Label string
	Hint  string
	Value string
}

type pageData struct {
	Theme    domain.Theme
	Tab      string
	Fields   []fieldView
	Issues   []config.Issue
	Analysis *domain.Analysis
	Verdict  output.Verdict
	Formats  []string
}

// APIResponse is the body of /api/analysis.
type APIResponse struct {
	Analysis *domain.Analysis `json:"analysis"`
	Issues   []config.Issue   `json:"issues"`
}

var contentTypes = map[string]string{
	"console":         "text/plain; charset=utf-8",
	"console-verbose": "text/plain; charset=utf-8",
	"csv":             "text/csv; charset=utf-8",
	"html":            "text/html; charset=utf-8",
	"json":            "application/json",
	"pdf":             "application/pdf",
	"yaml":            "application/yaml",
}

// Index renders the page for the persisted inputs.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	in, _ := s.prefs.LoadInputs(r.Context())
	s.render(w, r, in, nil, parseTab(r.URL.Query().Get("tab")))
}

// Calculate coerces the submitted form, persists the result and renders it.
func (s *Server) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	in, issues := config.Coerce(rawFromValues(r.PostForm))
	for _, issue := range issues {
		s.logger.Debugf("form: %s", issue)
	}
	s.prefs.SaveInputs(r.Context(), in)
	s.render(w, r, in, issues, parseTab(r.PostForm.Get("tab")))
}

// ToggleTheme flips and persists the theme, then sends the browser back to the page.
func (s *Server) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	theme := s.prefs.LoadTheme(r.Context()).Toggle()
	s.prefs.SaveTheme(r.Context(), theme)
	http.Redirect(w, r, "/?tab="+parseTab(r.FormValue("tab")), http.StatusSeeOther)
}

// APIAnalysis applies query parameters over the persisted inputs and returns JSON.
func (s *Server) APIAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	base, _ := s.prefs.LoadInputs(r.Context())
	raw := rawFromValues(r.URL.Query())
	in, issues := config.CoerceOnto(base, raw)
	if len(raw) > 0 {
		s.prefs.SaveInputs(r.Context(), in)
	}
	analysis, err := s.engine.Analyze(r.Context(), in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if issues == nil {
		issues = []config.Issue{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(APIResponse{Analysis: analysis, Issues: issues}); err != nil {
		s.logger.Warnf("encode api response: %v", err)
	}
}

// Report downloads the persisted analysis in the format named by the path, e.g. /report/pdf.
func (s *Server) Report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	f, err := output.LookupFormatter(strings.TrimPrefix(r.URL.Path, "/report/"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	in, _ := s.prefs.LoadInputs(r.Context())
	analysis, err := s.engine.Analyze(r.Context(), in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	data, err := f.Format(analysis)
	if err != nil {
		s.logger.Errorf("%s report: %v", f.Name(), err)
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypes[f.Name()])
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="property_report.%s"`, output.Extension(f)))
	w.Write(data)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, in domain.InputSet, issues []config.Issue, tab string) {
	analysis, err := s.engine.Analyze(r.Context(), in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	values := config.FromInputSet(in)
	fields := make([]fieldView, 0, len(config.Fields))
	for _, key := range config.Fields {
		fields = append(fields, fieldView{
			Key:   key,
			Label: config.FieldLabels[key],
			Hint:  config.FieldHints[key],
			Value: values[key],
		})
	}
	data := pageData{
		Theme:    s.prefs.LoadTheme(r.Context()),
		Tab:      tab,
		Fields:   fields,
		Issues:   issues,
		Analysis: analysis,
		Verdict:  output.AnalyzeResults(analysis),
		Formats:  output.AvailableFormatterNames(),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Errorf("render page: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// rawFromValues keeps only the known input fields.
func rawFromValues(v url.Values) config.RawInput {
	raw := config.RawInput{}
	for _, key := range config.Fields {
		if vals, ok := v[key]; ok && len(vals) > 0 {
			raw[key] = vals[0]
		}
	}
	return raw
}

func parseTab(s string) string {
	if s == TabNPV {
		return TabNPV
	}
	return TabROI
}

package output

import (
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
)

// GenerateReport writes the analysis in the named format to a file in dir and
// returns the file name.
func GenerateReport(a *domain.Analysis, format, dir string) (string, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, a, dir)
}

// Render returns the formatted bytes without touching the filesystem.
func Render(a *domain.Analysis, format string) ([]byte, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	return f.Format(a)
}

package output

import (
	"bytes"
	"encoding/csv"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
)

// CSVFormatter exports the year-by-year cash-flow table.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(a *domain.Analysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "NetCashFlow", "DiscountFactor", "PresentValue", "CumulativePresentValue", "Breakeven"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range a.NPV.Rows {
		record := []string{
			intToString(row.Year),
			row.NetCashFlow.StringFixed(2),
			row.DiscountFactor.StringFixed(6),
			row.PresentValue.StringFixed(2),
			row.CumulativePresentValue.StringFixed(2),
			boolToString(a.NPV.IsBreakeven(row.Year)),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

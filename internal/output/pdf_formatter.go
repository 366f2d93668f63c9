package output

import (
	"bytes"
	"fmt"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"github.com/go-pdf/fpdf"
)

// PDFFormatter renders a printable A4 report.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Year", 18},
	{"Net Cash Flow", 42},
	{"Discount Factor", 34},
	{"Present Value", 42},
	{"Cumulative PV", 44},
}

func (p PDFFormatter) Format(a *domain.Analysis) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.SetTitle("Property Investment Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 10, "Property Investment Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	verdict := AnalyzeResults(a)
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	if verdict.Positive {
		pdf.SetFillColor(227, 249, 229)
	} else {
		pdf.SetFillColor(255, 227, 227)
	}
	pdf.MultiCell(pdfContentWidth, 6, verdict.Headline, "", "L", true)
	pdf.Ln(4)

	pdfSection(pdf, "Return on Investment")
	pdfPair(pdf, "Total investment", FormatCurrency(a.ROI.TotalInvestment))
	pdfPair(pdf, "Annual rent income", FormatCurrency(a.ROI.AnnualRentIncome))
	pdfPair(pdf, "Annual costs", FormatCurrency(a.ROI.AnnualCosts))
	pdfPair(pdf, "Annual net income", FormatCurrency(a.ROI.AnnualNetIncome))
	pdfPair(pdf, "ROI", FormatPercentage(a.ROI.ROIPercent))
	pdfPair(pdf, "Payback period", FormatPayback(a.ROI.Payback))
	pdf.Ln(3)

	pdfSection(pdf, "Net Present Value")
	pdfPair(pdf, "Net present value", FormatCurrency(a.NPV.NetPresentValue))
	pdfPair(pdf, "Discount rate", FormatPercentage(a.NPV.DiscountRatePercent))
	pdfPair(pdf, "Holding period", fmt.Sprintf("%d years", a.NPV.HorizonYears))
	pdfPair(pdf, "Breakeven", FormatBreakeven(a.NPV.BreakevenYear))
	pdf.Ln(3)

	pdfCashFlowTable(pdf, a.NPV)
	pdf.Ln(4)

	pdfSection(pdf, "Assumptions")
	pdf.SetFont("Arial", "", 9)
	for _, line := range GenerateAssumptions(a.Inputs) {
		pdf.MultiCell(pdfContentWidth, 5, "- "+line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfSection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, title, "B", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(1)
}

func pdfPair(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(60, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(pdfContentWidth-60, 6, value, "", 1, "L", false, 0, "")
}

func pdfCashFlowTable(pdf *fpdf.Fpdf, npv domain.NPVResult) {
	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(0, 51, 102)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	for _, row := range npv.Rows {
		if pdf.GetY()+6 > pageHeight-pdfMarginBottom {
			pdf.AddPage()
			header()
		}
		highlight := npv.IsBreakeven(row.Year)
		pdf.SetFont("Arial", "", 9)
		if highlight {
			pdf.SetFont("Arial", "B", 9)
			pdf.SetFillColor(255, 243, 196)
		}
		cells := []string{
			intToString(row.Year),
			FormatCurrency(row.NetCashFlow),
			FormatFactor(row.DiscountFactor),
			FormatCurrency(row.PresentValue),
			FormatCurrency(row.CumulativePresentValue),
		}
		for i, text := range cells {
			pdf.CellFormat(pdfColumns[i].width, 6, text, "1", 0, "R", highlight, 0, "")
		}
		pdf.Ln(-1)
	}
}

package export

import (
	"bytes"
	"fmt"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
)

var columnWidths = []float64{26, 26, 26, 26, 26, 26, 24}

// MonthlyReportPDF renders an A4 portrait document.
func MonthlyReportPDF(rep report.MonthlyReportResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Monthly Attendance Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Employee: %s (#%d)", rep.Employee.Name, rep.Employee.ID)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", rep.DisplayMonth))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range columns {
		pdf.CellFormat(columnWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, d := range rep.Attendance {
		for i, v := range row(d) {
			pdf.CellFormat(columnWidths[i], 6, v, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, s := range summary(rep) {
		pdf.Cell(50, 7, s[0])
		pdf.Cell(50, 7, s[1])
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

package export

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

// MonthlyReportXLSX lays out a title block, the daily table and a summary block.
func MonthlyReportXLSX(rep report.MonthlyReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	f.SetCellValue(sheetName, "A1", "MONTHLY ATTENDANCE REPORT")
	f.MergeCell(sheetName, "A1", "G1")
	f.SetCellStyle(sheetName, "A1", "G1", headerStyle)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Employee: %s (#%d)", rep.Employee.Name, rep.Employee.ID))
	f.SetCellValue(sheetName, "A3", fmt.Sprintf("Month: %s", rep.DisplayMonth))

	const headerRow = 5
	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	r := headerRow + 1
	for _, d := range rep.Attendance {
		values := row(d)
		cells := make([]interface{}, len(values))
		for i, v := range values {
			cells[i] = v
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", r), &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", r, err)
		}
		r++
	}

	r++
	for _, s := range summary(rep) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), s[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), s[1])
		r++
	}

	f.SetColWidth(sheetName, "A", "B", 14)
	f.SetColWidth(sheetName, "C", "D", 12)
	f.SetColWidth(sheetName, "E", "G", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

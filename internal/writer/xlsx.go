package writer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kreditdata/slik-extractor/internal/models"
)

const sheetName = "Kredit_Pembiayaan"

// Workbook palette, matching the house style of the manually produced
// recap sheets this tool replaces.
const (
	titleFill  = "1F3864"
	headerFill = "2E5090"
	altRowFill = "D9E1F2"
)

// Per-column widths, tuned to the usual field content.
var columnWidths = []float64{
	12, 30, 22, 24, 10, 24, 18, 20, 22, 22,
	14, 16, 12, 18, 18, 18, 26, 14, 18, 18,
	18, 14, 14,
}

// XLSXWriter writes the extracted credit records as a styled workbook.
type XLSXWriter struct {
	// Master prepends debtor identity columns to every row.
	Master bool
	Logger *slog.Logger
}

// WriteToFile writes one report to an XLSX workbook at the given path.
func (w *XLSXWriter) WriteToFile(path string, report *models.Report) error {
	return w.WriteAllToFile(path, []*models.Report{report})
}

// WriteAllToFile writes several reports into one workbook sheet.
func (w *XLSXWriter) WriteAllToFile(path string, reports []*models.Report) error {
	f, err := w.build(reports)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx save: %w", err)
	}
	w.logger().Info("export.xlsx.ok", "path", path, "reports", len(reports))
	return nil
}

// Bytes renders the workbook in memory, for HTTP responses.
func (w *XLSXWriter) Bytes(report *models.Report) ([]byte, error) {
	f, err := w.build([]*models.Report{report})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *XLSXWriter) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}

func (w *XLSXWriter) build(reports []*models.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	header := headerRow(w.Master)
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "999999", Style: 1},
		{Type: "right", Color: "999999", Style: 1},
		{Type: "top", Color: "999999", Style: 1},
		{Type: "bottom", Color: "999999", Style: 1},
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{titleFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Bold: true, Size: 10, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}
	rowStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}
	altRowStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{altRowFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}

	// Title row names the debtor for single-report output.
	title := "SLIK OJK - Kredit/Pembiayaan"
	if len(reports) == 1 && reports[0].DebtorName != "" {
		title += "  |  Debitur: " + reports[0].DebtorName
	}
	title += "  |  Diekstrak: " + time.Now().Format("02 January 2006")

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, err
	}
	_ = f.SetCellValue(sheetName, "A1", title)
	_ = f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)
	_ = f.SetRowHeight(sheetName, 1, 22)

	for i, name := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheetName, cell, name)
	}
	_ = f.SetCellStyle(sheetName, "A2", lastCol+"2", headerStyle)
	_ = f.SetRowHeight(sheetName, 2, 30)

	row := 3
	for _, report := range reports {
		for _, rec := range report.Records {
			for col, v := range recordRow(report, rec, w.Master) {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				_ = f.SetCellValue(sheetName, cell, v)
			}
			style := rowStyle
			if row%2 == 0 {
				style = altRowStyle
			}
			first, _ := excelize.CoordinatesToCellName(1, row)
			last, _ := excelize.CoordinatesToCellName(len(header), row)
			_ = f.SetCellStyle(sheetName, first, last, style)
			_ = f.SetRowHeight(sheetName, row, 18)
			row++
		}
	}

	widths := columnWidths
	if w.Master {
		widths = append([]float64{28, 24}, columnWidths...)
	}
	for i, width := range widths {
		if i >= len(header) {
			break
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, col, col, width)
	}

	err = f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      2,
		TopLeftCell: "A3",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return nil, err
	}

	return f, nil
}

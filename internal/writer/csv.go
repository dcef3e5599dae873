package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/kreditdata/slik-extractor/internal/models"
)

// CSVWriter writes the extracted credit records as delimited text.
type CSVWriter struct {
	// IncludeHeader emits #-prefixed document metadata rows above the
	// column header.
	IncludeHeader bool
	// Master prepends debtor identity columns to every row, for merged
	// multi-report output.
	Master bool
}

// WriteToFile writes one report to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, report *models.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, report)
}

// Write writes one report in CSV form to the given writer.
func (w *CSVWriter) Write(out io.Writer, report *models.Report) error {
	return w.WriteAll(out, []*models.Report{report})
}

// WriteAll writes several reports into a single CSV, sharing one column
// header. Metadata comment rows only make sense for a single report and are
// skipped when more than one is given.
func (w *CSVWriter) WriteAll(out io.Writer, reports []*models.Report) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader && len(reports) == 1 {
		r := reports[0]
		if r.DebtorName != "" {
			writer.Write([]string{"# Debitur", r.DebtorName})
		}
		if r.ReportNumber != "" {
			writer.Write([]string{"# Nomor Laporan", r.ReportNumber})
		}
	}

	if err := writer.Write(headerRow(w.Master)); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, report := range reports {
		for _, rec := range report.Records {
			if err := writer.Write(recordRow(report, rec, w.Master)); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	return nil
}

package parser

import (
	"strings"

	"github.com/kreditdata/slik-extractor/internal/models"
)

// Parse runs the full extraction over the text of one SLIK document: the
// document-level metadata, then one record per facility block. Blocks that
// never yield a reporter identity describe nothing usable and are dropped;
// the rest keep their segmentation order. Parse itself cannot fail: a
// document with no recognizable blocks produces an empty record list, and
// the caller decides what that means.
func Parse(pages []string) *models.Report {
	fullText := strings.Join(pages, "\n")

	report := &models.Report{
		DebtorName:   extractDebtorName(fullText),
		ReportNumber: extractReportNumber(fullText),
	}

	for _, block := range segment(fullText) {
		rec := extractRecord(block)
		if rec.Bank == "" {
			continue
		}
		report.Records = append(report.Records, rec)
	}
	return report
}

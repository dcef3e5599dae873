package parser

import (
	"regexp"
	"strings"

	"github.com/kreditdata/slik-extractor/internal/models"
)

// Debtor name candidates: an all-caps token after a "Nama" label, either on
// the same line or the next one. The report also prints "LAKI-LAKI" (male)
// near the same label, which would otherwise win.
var debtorNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`Nama\s*\n([A-Z][A-Z .,'-]+)`),
	regexp.MustCompile(`Nama\s+([A-Z][A-Z .,'-]{2,})`),
}

var reportNumberPattern = regexp.MustCompile(`Nomor Laporan:?\s*(\d+/[A-Za-z]+/\d+/\d+)`)

// extractDebtorName recovers the debtor's name from the report header.
// Returns the sentinel when nothing plausible is found.
func extractDebtorName(fullText string) string {
	for _, re := range debtorNamePatterns {
		for _, m := range re.FindAllStringSubmatch(fullText, -1) {
			candidate := clean(m[1])
			if candidate == "" || strings.HasPrefix(candidate, "LAKI") {
				continue
			}
			return candidate
		}
	}
	return models.Undetected
}

// extractReportNumber recovers the IDEB report number
// (e.g. 41897/IDEB/0101564/2019).
func extractReportNumber(fullText string) string {
	if m := reportNumberPattern.FindStringSubmatch(fullText); m != nil {
		return m[1]
	}
	return models.Undetected
}

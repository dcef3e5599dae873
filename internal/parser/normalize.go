package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// clean collapses whitespace runs (including newlines from wrapped PDF
// lines) into single spaces and trims the result.
func clean(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// parseRupiah converts an Indonesian-formatted amount like "9.455.927,00"
// into a decimal: "." is the thousands separator, "," the decimal mark.
// Unparseable input yields zero; a missing amount is not an error at this
// level.
func parseRupiah(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parsePercent parses the bare number preceding a "%" sign. Percentages in
// SLIK reports carry no thousands separator, so no remapping is needed.
func parsePercent(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseCount parses a non-negative integer counter, zero when absent or
// malformed.
func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

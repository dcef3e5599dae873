package parser

import (
	"regexp"
	"strings"

	"github.com/kreditdata/slik-extractor/internal/models"
)

// A strategy attempts one known layout for a field and reports whether it
// matched. Each field keeps an ordered cascade of strategies; the first hit
// wins and later variants are not tried.
type strategy func(block string) (string, bool)

func firstOf(block string, strategies ...strategy) string {
	for _, s := range strategies {
		if v, ok := s(block); ok {
			return v
		}
	}
	return ""
}

// match builds a strategy from a pattern and the capture group to keep.
func match(re *regexp.Regexp, group int) strategy {
	return func(block string) (string, bool) {
		m := re.FindStringSubmatch(block)
		if m == nil || strings.TrimSpace(m[group]) == "" {
			return "", false
		}
		return strings.TrimSpace(m[group]), true
	}
}

// labelled extracts the remainder of the line after a field label, cut at
// the first terminator when one follows on the same line. SLIK reports put
// several fields on one physical line, so terminators are the labels of
// whatever tends to come next.
func labelled(label string, terminators ...string) strategy {
	re := regexp.MustCompile(regexp.QuoteMeta(label) + `[ \t]*([^\n]*)`)
	return func(block string) (string, bool) {
		m := re.FindStringSubmatch(block)
		if m == nil {
			return "", false
		}
		value := m[1]
		lower := strings.ToLower(value)
		for _, t := range terminators {
			if idx := strings.Index(lower, strings.ToLower(t)); idx >= 0 {
				value = value[:idx]
				lower = lower[:idx]
			}
		}
		value = clean(value)
		if value == "" {
			return "", false
		}
		return value, true
	}
}

// Reporter identity. The usual layout is "<code> - <name> Rp ..." on the
// block's first line; some institutions render a tabular
// "Pelapor Cabang Baki Debet" header with the code and name on the data row
// below it.
var (
	bankHeaderPattern = regexp.MustCompile(`(\d{3,6})\s*-\s*([^\n]+?)\s*(?:Rp\b|Baki Debet)`)
	bankTablePattern  = regexp.MustCompile(`Pelapor\s+Cabang\s+Baki Debet[^\n]*\n\s*(\d{3,6})\s+([^\n]+?)\s+Rp`)
)

var (
	accountNumberPattern    = regexp.MustCompile(`(?s)No Rekening\s*(.*?)\s*Kualitas`)
	qualityPattern          = regexp.MustCompile(`Kualitas\s*(\d+)\s*-\s*([^\n]+)`)
	outstandingPattern      = regexp.MustCompile(`Baki Debet\s*Rp\s*([\d.,]+)`)
	interestRatePattern     = regexp.MustCompile(`Suku Bunga/Imbalan\s*([\d.,]+)\s*%`)
	pastDueDaysPattern      = regexp.MustCompile(`Jumlah Hari Tunggakan\s+(\d+)`)
	contractDatePattern     = regexp.MustCompile(`Tanggal Akad Awal\s+(\d{2}\s+[A-Za-z]+\s+\d{4})`)
	maturityDatePattern     = regexp.MustCompile(`Tanggal Jatuh Tempo\s+(\d{2}\s+[A-Za-z]+\s+\d{4})`)
	lastUpdatePattern       = regexp.MustCompile(`Tanggal Update[^\n]*\n[^\n]*?(\d{2}\s+[A-Za-z]+\s+\d{4})`)
	originalCeilingPattern  = regexp.MustCompile(`Plafon Awal\s*Rp\s*([\d.,]+)`)
	renewalCeilingPattern   = regexp.MustCompile(`(?s)Perpanjangan.*?Plafon\s*Rp\s*([\d.,]+)`)
	anyCeilingPattern       = regexp.MustCompile(`Plafon\s*Rp\s*([\d.,]+)`)
	pastDuePrincipalPattern = regexp.MustCompile(`Tunggakan Pokok\s*Rp\s*([\d.,]+)`)
	restructuringPattern    = regexp.MustCompile(`Frekuensi Restrukturisasi\s+(\d+)`)
	penaltyPattern          = regexp.MustCompile(`Denda\s*Rp\s*([\d.,]+)`)
)

// plainCeiling picks any "Plafon Rp <amount>" that is not the Plafon Awal
// figure. RE2 has no lookbehind, so scan match positions and reject those
// whose preceding text ends in "Awal". Best effort: the Perpanjangan-anchored
// strategy above it is the reliable signal and runs first.
func plainCeiling(block string) (string, bool) {
	for _, loc := range anyCeilingPattern.FindAllStringSubmatchIndex(block, -1) {
		before := strings.TrimSpace(block[:loc[0]])
		if strings.HasSuffix(before, "Awal") {
			continue
		}
		return block[loc[2]:loc[3]], true
	}
	return "", false
}

// extractRecord recovers every known field from one facility block. Missing
// fields keep their zero value; nothing here fails.
func extractRecord(block string) models.CreditRecord {
	var rec models.CreditRecord

	for _, re := range []*regexp.Regexp{bankHeaderPattern, bankTablePattern} {
		if m := re.FindStringSubmatch(block); m != nil {
			rec.ReporterCode = m[1]
			rec.Bank, rec.Branch = splitBankBranch(clean(m[2]))
			break
		}
	}

	if acct := firstOf(block, match(accountNumberPattern, 1)); acct != "" {
		rec.AccountNumber = clean(acct)
	}
	if m := qualityPattern.FindStringSubmatch(block); m != nil {
		rec.QualityCode = m[1]
		rec.QualityLabel = clean(m[2])
	}

	rec.OutstandingBalance = parseRupiah(firstOf(block, match(outstandingPattern, 1)))
	rec.UsageType = firstOf(block, labelled("Jenis Penggunaan", "Frekuensi"))
	rec.FacilityType = firstOf(block, labelled("Jenis Kredit/Pembiayaan", "Nilai Proyek"))
	rec.OriginalContractNumber = firstOf(block, labelled("No Akad Awal", "Realisasi"))
	rec.InterestRate = parsePercent(firstOf(block, match(interestRatePattern, 1)))
	rec.InterestRateType = firstOf(block, labelled("Jenis Suku Bunga/Imbalan", "Sifat"))
	rec.PastDueDays = parseCount(firstOf(block, match(pastDueDaysPattern, 1)))
	rec.OriginalContractDate = firstOf(block, match(contractDatePattern, 1))
	rec.MaturityDate = firstOf(block, match(maturityDatePattern, 1))
	rec.LastUpdateDate = firstOf(block, match(lastUpdatePattern, 1))
	rec.EconomicSector = firstOf(block, labelled("Sektor Ekonomi", "Tanggal Restrukturisasi"))
	rec.FacilityCondition = firstOf(block, labelled("Kondisi", "Keterangan"))
	rec.OriginalCeiling = parseRupiah(firstOf(block, match(originalCeilingPattern, 1)))
	rec.CurrentCeiling = parseRupiah(firstOf(block, match(renewalCeilingPattern, 1), plainCeiling))
	rec.PastDuePrincipal = parseRupiah(firstOf(block, match(pastDuePrincipalPattern, 1)))
	rec.RestructuringCount = parseCount(firstOf(block, match(restructuringPattern, 1)))
	rec.PenaltyAmount = parseRupiah(firstOf(block, match(penaltyPattern, 1)))

	return rec
}

// Branch office markers that follow the bank name in the Pelapor column.
var branchMarkerPattern = regexp.MustCompile(`(?i)\s+(KC[A-Z]*|CAPEM|KANTOR\s+CABANG)(\s|$)`)

// splitBankBranch untangles the Pelapor/Cabang column, where the bank name
// is printed twice with the branch appended:
// "BANK MANDIRI BANK MANDIRI KC TJ.PINANG" -> ("BANK MANDIRI", "KC TJ.PINANG").
func splitBankBranch(full string) (bank, branch string) {
	words := strings.Fields(full)
	for i := 2; i <= len(words); i++ {
		candidate := strings.Join(words[:i], " ")
		rest := strings.TrimSpace(full[len(candidate):])
		if strings.HasPrefix(rest, candidate) {
			if b := strings.TrimSpace(rest[len(candidate):]); b != "" {
				return candidate, b
			}
		}
	}
	if m := branchMarkerPattern.FindStringIndex(full); m != nil {
		before := strings.TrimSpace(full[:m[0]])
		bwords := strings.Fields(before)
		if half := len(bwords) / 2; half > 0 {
			firstHalf := strings.Join(bwords[:half], " ")
			if firstHalf == strings.Join(bwords[half:], " ") {
				before = firstHalf
			}
		}
		return before, strings.TrimSpace(full[m[0]:])
	}
	return full, ""
}

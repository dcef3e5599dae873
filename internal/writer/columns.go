package writer

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/kreditdata/slik-extractor/internal/models"
)

// Column order and display names shared by the CSV and XLSX writers. Master
// mode (a directory of reports merged into one file) prepends the debtor
// identity so rows stay attributable.
var columns = []string{
	"Kode Pelapor",
	"Bank (Pelapor)",
	"Cabang",
	"No Rekening",
	"Kualitas",
	"Keterangan Kualitas",
	"Baki Debet (IDR)",
	"Jenis Penggunaan",
	"Jenis Kredit/Pembiayaan",
	"No Akad Awal",
	"Suku Bunga/Imbalan (%)",
	"Jenis Suku Bunga",
	"Jumlah Hari Tunggakan",
	"Tanggal Akad Awal",
	"Tanggal Jatuh Tempo",
	"Tanggal Update",
	"Sektor Ekonomi",
	"Kondisi",
	"Plafon Awal (IDR)",
	"Plafon (IDR)",
	"Tunggakan Pokok (IDR)",
	"Frekuensi Restrukturisasi",
	"Denda (IDR)",
}

var masterColumns = append([]string{"Nama Debitur", "Nomor Laporan"}, columns...)

func headerRow(master bool) []string {
	if master {
		return masterColumns
	}
	return columns
}

func recordRow(report *models.Report, rec models.CreditRecord, master bool) []string {
	row := []string{
		rec.ReporterCode,
		rec.Bank,
		rec.Branch,
		rec.AccountNumber,
		rec.QualityCode,
		rec.QualityLabel,
		formatAmount(rec.OutstandingBalance),
		rec.UsageType,
		rec.FacilityType,
		rec.OriginalContractNumber,
		formatAmount(rec.InterestRate),
		rec.InterestRateType,
		formatCount(rec.PastDueDays),
		rec.OriginalContractDate,
		rec.MaturityDate,
		rec.LastUpdateDate,
		rec.EconomicSector,
		rec.FacilityCondition,
		formatAmount(rec.OriginalCeiling),
		formatAmount(rec.CurrentCeiling),
		formatAmount(rec.PastDuePrincipal),
		strconv.Itoa(rec.RestructuringCount),
		formatAmount(rec.PenaltyAmount),
	}
	if master {
		row = append([]string{report.DebtorName, report.ReportNumber}, row...)
	}
	return row
}

// formatAmount renders a decimal with two digits; zero renders empty so
// absent amounts do not read as real zeroes in the sheet.
func formatAmount(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}

func formatCount(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

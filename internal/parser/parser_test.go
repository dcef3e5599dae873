package parser

import (
	"testing"

	"github.com/shopspring/decimal"
)

// Two pages of a minimal but structurally faithful report: one facility
// from BCA, followed by a collateral section and a fragment with no
// recognizable reporter.
var samplePages = []string{
	`SLIK OJK iDeb
Nomor Laporan: 41897/IDEB/0101564/2019
Nama
BUDI SANTOSO
Jenis Kelamin
LAKI-LAKI
Kredit/Pembiayaan
014 - PT Bank Central Asia Tbk
Baki Debet Rp 9.455.927,00
No Rekening 0123456789
Kualitas 1 - Lancar
Jenis Penggunaan Modal Kerja Frekuensi Restrukturisasi 0
Plafon Awal Rp 10.000.000,00
Agunan
Jenis Agunan Tanah Dan Bangunan`,
	`Kredit/Pembiayaan
this fragment has no reporter header at all, only filler text that is
long enough to pass the minimum block size threshold for segmentation
No Rekening 42`,
}

func TestParseEndToEnd(t *testing.T) {
	report := Parse(samplePages)

	if report.DebtorName != "BUDI SANTOSO" {
		t.Errorf("DebtorName: got %q, want %q", report.DebtorName, "BUDI SANTOSO")
	}
	if report.ReportNumber != "41897/IDEB/0101564/2019" {
		t.Errorf("ReportNumber: got %q", report.ReportNumber)
	}

	// The second block has no bank identity and must be dropped.
	if len(report.Records) != 1 {
		t.Fatalf("records: got %d, want 1", len(report.Records))
	}

	rec := report.Records[0]
	if rec.ReporterCode != "014" {
		t.Errorf("ReporterCode: got %q, want %q", rec.ReporterCode, "014")
	}
	if rec.Bank != "PT Bank Central Asia Tbk" {
		t.Errorf("Bank: got %q, want %q", rec.Bank, "PT Bank Central Asia Tbk")
	}
	if !rec.OutstandingBalance.Equal(decimal.RequireFromString("9455927.00")) {
		t.Errorf("OutstandingBalance: got %s", rec.OutstandingBalance)
	}
	if rec.QualityCode != "1" {
		t.Errorf("QualityCode: got %q, want %q", rec.QualityCode, "1")
	}
	if rec.EconomicSector != "" {
		t.Errorf("EconomicSector: got %q, want empty default", rec.EconomicSector)
	}
}

func TestParseNoBlocks(t *testing.T) {
	report := Parse([]string{"a report header with no facility sections at all"})

	if len(report.Records) != 0 {
		t.Errorf("records: got %d, want 0", len(report.Records))
	}
	if report.DebtorName == "" {
		t.Error("DebtorName must carry the sentinel, not be empty")
	}
}

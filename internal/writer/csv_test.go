package writer

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kreditdata/slik-extractor/internal/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		DebtorName:   "BUDI SANTOSO",
		ReportNumber: "41897/IDEB/0101564/2019",
		Records: []models.CreditRecord{
			{
				ReporterCode:       "014",
				Bank:               "PT Bank Central Asia Tbk",
				QualityCode:        "1",
				QualityLabel:       "Lancar",
				OutstandingBalance: decimal.RequireFromString("9455927.00"),
				OriginalCeiling:    decimal.RequireFromString("10000000.00"),
				RestructuringCount: 0,
			},
			{
				ReporterCode: "008",
				Bank:         "BANK MANDIRI",
				Branch:       "KC TJ.PINANG",
				QualityCode:  "2",
				QualityLabel: "Dalam Perhatian Khusus",
			},
		},
	}
}

func TestCSVWriterWrite(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: true}
	require.NoError(t, w.Write(&buf, sampleReport()))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1 // metadata rows are shorter than data rows
	rows, err := r.ReadAll()
	require.NoError(t, err)

	// 2 metadata rows + header + 2 records
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"# Debitur", "BUDI SANTOSO"}, rows[0])
	assert.Equal(t, []string{"# Nomor Laporan", "41897/IDEB/0101564/2019"}, rows[1])
	assert.Equal(t, headerRow(false), rows[2])

	first := rows[3]
	assert.Equal(t, "014", first[0])
	assert.Equal(t, "PT Bank Central Asia Tbk", first[1])
	assert.Equal(t, "9455927.00", first[6])
	assert.Equal(t, "10000000.00", first[18])
	assert.Equal(t, "0", first[21])

	second := rows[4]
	assert.Equal(t, "KC TJ.PINANG", second[2])
	assert.Equal(t, "", second[6], "absent amount renders empty, not 0.00")
}

func TestCSVWriterNoHeader(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: false}
	require.NoError(t, w.Write(&buf, sampleReport()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, headerRow(false), rows[0])
}

func TestCSVWriterMaster(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{Master: true}

	second := &models.Report{
		DebtorName:   "SITI AMINAH",
		ReportNumber: "100/IDEB/02/2020",
		Records: []models.CreditRecord{
			{ReporterCode: "011", Bank: "BANK BRI"},
		},
	}
	require.NoError(t, w.WriteAll(&buf, []*models.Report{sampleReport(), second}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// header + 3 records, no metadata rows for merged output
	require.Len(t, rows, 4)
	assert.Equal(t, "Nama Debitur", rows[0][0])
	assert.Equal(t, "BUDI SANTOSO", rows[1][0])
	assert.Equal(t, "SITI AMINAH", rows[3][0])
	assert.Equal(t, "BANK BRI", rows[3][3])
}

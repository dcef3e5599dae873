package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"

	"github.com/kreditdata/slik-extractor/internal/api"
	"github.com/kreditdata/slik-extractor/internal/extractor"
	"github.com/kreditdata/slik-extractor/internal/models"
	"github.com/kreditdata/slik-extractor/internal/parser"
	"github.com/kreditdata/slik-extractor/internal/writer"
)

const version = "1.0.0"

func main() {
	csvFlag := flag.Bool("csv", false, "Write CSV output")
	xlsxFlag := flag.Bool("xlsx", false, "Write XLSX output (default when neither format flag is given)")
	outputFlag := flag.String("output", "", "Output file path (single input only; defaults to input name with _slik suffix)")
	headerFlag := flag.Bool("header", true, "Include document metadata header rows in CSV")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of converting files")
	addrFlag := flag.String("addr", "", "Listen address for --serve (default :8080)")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `SLIK OJK PDF to CSV/XLSX Converter

Extracts Kredit/Pembiayaan facility records from SLIK (iDeb) disclosure
PDFs into structured spreadsheets.

Usage:
  slik-extractor [flags] <input.pdf|directory> [input2.pdf ...]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert one report to a styled workbook
  slik-extractor laporan_debitur.pdf

  # CSV instead
  slik-extractor --csv laporan_debitur.pdf

  # Merge every report in a folder into one master sheet
  slik-extractor slik_data/

  # Run the HTTP API
  slik-extractor --serve --addr :9000
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("slik-extractor v%s\n", version)
		os.Exit(0)
	}

	loadConfig()

	if *serveFlag {
		addr := *addrFlag
		if addr == "" {
			addr = viper.GetString("server.addr")
		}
		runServer(addr)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if *csvFlag && *xlsxFlag {
		fatalf("Choose one of --csv or --xlsx, not both\n")
	}
	format := viper.GetString("output.format")
	if *csvFlag {
		format = "csv"
	} else if *xlsxFlag {
		format = "xlsx"
	}
	includeHeader := *headerFlag && viper.GetBool("output.header")

	for _, inputPath := range flag.Args() {
		info, err := os.Stat(inputPath)
		if err != nil {
			fatalf("Input not found: %s\n", inputPath)
		}

		if info.IsDir() {
			err = processDir(inputPath, format, *outputFlag)
		} else {
			err = processFile(inputPath, format, *outputFlag, includeHeader)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

// loadConfig overlays defaults with an optional slik.yaml next to the
// binary or in the working directory. Flags always win.
func loadConfig() {
	viper.SetConfigName("slik")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetDefault("output.format", "xlsx")
	viper.SetDefault("output.header", true)
	viper.SetDefault("server.addr", ":8080")
	// Missing config file is the normal case.
	_ = viper.ReadInConfig()
}

func runServer(addr string) {
	app := fiber.New(fiber.Config{
		AppName:   "slik-extractor v" + version,
		BodyLimit: 32 << 20,
	})
	api.RegisterRoutes(app)

	fmt.Printf("Listening on %s\n", addr)
	if err := app.Listen(addr); err != nil {
		fatalf("Server failed: %v\n", err)
	}
}

func processFile(inputPath, format, outputPath string, includeHeader bool) error {
	if ext := strings.ToLower(filepath.Ext(inputPath)); ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	pages, err := extractor.ExtractText(inputPath)
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}
	fmt.Printf("  Extracted text from %d page(s)\n", len(pages))

	report := parser.Parse(pages)
	printSummary(report)

	if len(report.Records) == 0 {
		return fmt.Errorf("no Kredit/Pembiayaan blocks found; nothing to export")
	}

	outPath := outputPath
	if outPath == "" {
		outPath = autoOutputName(inputPath, format)
	}

	if err := writeReport(outPath, format, includeHeader, false, report); err != nil {
		return err
	}

	fmt.Printf("  Output: %s\n", outPath)
	return nil
}

// processDir merges every PDF in a directory into one master spreadsheet,
// with the debtor name and report number stamped on each row.
func processDir(dirPath, format, outputPath string) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	var reports []*models.Report
	total := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		path := filepath.Join(dirPath, e.Name())
		fmt.Printf("Processing: %s\n", path)

		pages, err := extractor.ExtractText(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Skipping %s: %v\n", e.Name(), err)
			continue
		}
		report := parser.Parse(pages)
		fmt.Printf("  Debitur: %s, %d record(s)\n", report.DebtorName, len(report.Records))
		if len(report.Records) == 0 {
			continue
		}
		reports = append(reports, report)
		total += len(report.Records)
	}

	if total == 0 {
		return fmt.Errorf("no records extracted from any PDF in %s", dirPath)
	}

	outPath := outputPath
	if outPath == "" {
		outPath = filepath.Join(dirPath, "MASTER_SLIK."+format)
	}

	if err := writeReports(outPath, format, reports); err != nil {
		return err
	}

	fmt.Printf("Master output: %s (%d rows from %d reports)\n", outPath, total, len(reports))
	return nil
}

func writeReport(path, format string, includeHeader, master bool, report *models.Report) error {
	switch format {
	case "csv":
		w := &writer.CSVWriter{IncludeHeader: includeHeader, Master: master}
		if err := w.WriteToFile(path, report); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
	default:
		w := &writer.XLSXWriter{Master: master}
		if err := w.WriteToFile(path, report); err != nil {
			return fmt.Errorf("XLSX write failed: %w", err)
		}
	}
	return nil
}

func writeReports(path, format string, reports []*models.Report) error {
	switch format {
	case "csv":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file %q: %w", path, err)
		}
		defer f.Close()
		w := &writer.CSVWriter{Master: true}
		if err := w.WriteAll(f, reports); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
	default:
		w := &writer.XLSXWriter{Master: true}
		if err := w.WriteAllToFile(path, reports); err != nil {
			return fmt.Errorf("XLSX write failed: %w", err)
		}
	}
	return nil
}

func printSummary(report *models.Report) {
	fmt.Printf("  Debitur       : %s\n", report.DebtorName)
	fmt.Printf("  Nomor Laporan : %s\n", report.ReportNumber)
	fmt.Printf("  Found %d record(s)\n", len(report.Records))

	if len(report.Records) == 0 {
		return
	}
	fmt.Printf("  %-4s %-24s %-16s %16s  %16s\n", "#", "Bank (Pelapor)", "Kualitas", "Plafon", "Baki Debet")
	for i, rec := range report.Records {
		bank := rec.Bank
		if len(bank) > 24 {
			bank = bank[:24]
		}
		kualitas := rec.QualityLabel
		if len(kualitas) > 16 {
			kualitas = kualitas[:16]
		}
		fmt.Printf("  %-4d %-24s %-16s %16s  %16s\n",
			i+1, bank, kualitas,
			rec.CurrentCeiling.StringFixed(2),
			rec.OutstandingBalance.StringFixed(2),
		)
	}
}

var unsafeNameChars = regexp.MustCompile(`[^\w\-]+`)

// autoOutputName derives "<input base>_slik.<ext>" with an export-safe name.
func autoOutputName(inputPath, format string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	safe := unsafeNameChars.ReplaceAllString(base, "_")
	safe = strings.Trim(safe, "_")
	if safe == "" {
		safe = "slik_output"
	}
	return filepath.Join(filepath.Dir(inputPath), safe+"_slik."+format)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

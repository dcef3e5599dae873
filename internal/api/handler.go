package api

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kreditdata/slik-extractor/internal/extractor"
	"github.com/kreditdata/slik-extractor/internal/models"
	"github.com/kreditdata/slik-extractor/internal/parser"
	"github.com/kreditdata/slik-extractor/internal/writer"
)

const apiVersion = "1.0.0"

// ConvertResponse is the JSON response from POST /api/convert.
type ConvertResponse struct {
	Success      bool                  `json:"success"`
	Error        string                `json:"error,omitempty"`
	DebtorName   string                `json:"debtorName,omitempty"`
	ReportNumber string                `json:"reportNumber,omitempty"`
	Records      []models.CreditRecord `json:"records"`
	CSV          string                `json:"csv,omitempty"`
	Count        int                   `json:"count"`
	Version      string                `json:"version,omitempty"`
}

// RegisterRoutes mounts the API on the given app.
func RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", HandleHealth)
	app.Post("/api/convert", HandleConvert)
}

// HandleHealth reports liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": apiVersion,
		"engine":  "fiber",
	})
}

// HandleConvert accepts a SLIK PDF as multipart field "file" and returns
// the extracted records as JSON plus an inline CSV rendering. With
// format=xlsx the styled workbook is returned instead.
func HandleConvert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return writeError(c, fiber.StatusBadRequest, "Only PDF files are supported.")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, fmt.Sprintf("Failed to read upload: %v", err))
	}
	defer src.Close()

	tmpFile, err := os.CreateTemp("", "slik-*.pdf")
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to create temp file.")
	}
	defer os.Remove(tmpFile.Name())

	if _, err := io.Copy(tmpFile, src); err != nil {
		tmpFile.Close()
		return writeError(c, fiber.StatusInternalServerError, "Failed to save uploaded file.")
	}
	tmpFile.Close()

	pages, err := extractor.ExtractText(tmpFile.Name())
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("PDF extraction failed: %v", err))
	}

	report := parser.Parse(pages)
	if len(report.Records) == 0 {
		return writeError(c, fiber.StatusUnprocessableEntity, "No Kredit/Pembiayaan blocks found in this document.")
	}

	slog.Info("api.convert.ok",
		"file", fileHeader.Filename,
		"pages", len(pages),
		"records", len(report.Records),
	)

	if c.FormValue("format") == "xlsx" {
		xlsxWriter := &writer.XLSXWriter{}
		data, err := xlsxWriter.Bytes(report)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("XLSX generation failed: %v", err))
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="slik_output.xlsx"`)
		return c.Send(data)
	}

	includeHeader := c.FormValue("header") != "false"
	var csvBuf bytes.Buffer
	csvWriter := &writer.CSVWriter{IncludeHeader: includeHeader}
	if err := csvWriter.Write(&csvBuf, report); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	return c.JSON(ConvertResponse{
		Success:      true,
		DebtorName:   report.DebtorName,
		ReportNumber: report.ReportNumber,
		Records:      report.Records,
		CSV:          csvBuf.String(),
		Count:        len(report.Records),
		Version:      apiVersion,
	})
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success: false,
		Error:   msg,
		Records: []models.CreditRecord{},
	})
}

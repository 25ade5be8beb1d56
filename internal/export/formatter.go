// Package export renders validated receipt selections into downloadable
// payloads. It is a serializer only: ownership validation happens in the
// bulk mutation service before anything reaches this package.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/xyzruben/steward/constants"
	"github.com/xyzruben/steward/internal/bulkops"
	"github.com/xyzruben/steward/internal/entity"
)

// Payload is a rendered export: bytes plus the metadata an HTTP or gRPC
// layer needs to hand it to a client.
type Payload struct {
	Bytes       []byte
	Filename    string
	ContentType string
	Size        int
}

// Formatter renders receipt sets into CSV, JSON, PDF or XLSX.
type Formatter struct {
	logger *slog.Logger
}

func NewFormatter(logger *slog.Logger) *Formatter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Formatter{logger: logger}
}

// Format renders recs in the requested format. stats, when non-nil, adds an
// analytics section (summary sheet, trailing table, or embedded object,
// depending on the format).
func (f *Formatter) Format(recs []entity.ReceiptSummary, format constants.ExportFormat, stats *bulkops.Stats) (*Payload, error) {
	start := time.Now()

	var (
		data []byte
		err  error
	)
	switch format {
	case constants.FormatCSV:
		data, err = renderCSV(recs, stats)
	case constants.FormatJSON:
		data, err = renderJSON(recs, stats)
	case constants.FormatPDF:
		data, err = renderPDF(recs, stats)
	case constants.FormatXLSX:
		data, err = renderXLSX(recs, stats)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	payload := &Payload{
		Bytes:       data,
		Filename:    fmt.Sprintf("receipts_export_%s.%s", time.Now().UTC().Format("20060102_150405"), format.Ext()),
		ContentType: format.ContentType(),
		Size:        len(data),
	}
	f.logger.Info("export.rendered",
		"format", string(format),
		"rows", len(recs),
		"bytes", payload.Size,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return payload, nil
}

var columns = []string{
	"ID", "Merchant", "Total", "Purchase Date", "Category", "Subcategory", "Confidence", "Summary", "Image URL",
}

func rowValues(r entity.ReceiptSummary) []string {
	confidence := ""
	if r.ConfidenceScore != nil {
		confidence = fmt.Sprintf("%.2f", *r.ConfidenceScore)
	}
	return []string{
		r.ID.String(),
		r.Merchant,
		fmt.Sprintf("%.2f", r.Total),
		r.PurchaseDate.Format("2006-01-02"),
		deref(r.Category),
		deref(r.Subcategory),
		confidence,
		deref(r.Summary),
		r.ImageURL,
	}
}

func renderCSV(recs []entity.ReceiptSummary, stats *bulkops.Stats) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for _, r := range recs {
		if err := w.Write(rowValues(r)); err != nil {
			return nil, err
		}
	}

	if stats != nil {
		_ = w.Write([]string{})
		_ = w.Write([]string{"Category", "Count", "Total"})
		for _, c := range stats.ByCategory {
			_ = w.Write([]string{c.Category, fmt.Sprintf("%d", c.Count), fmt.Sprintf("%.2f", c.Total)})
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderJSON(recs []entity.ReceiptSummary, stats *bulkops.Stats) ([]byte, error) {
	envelope := struct {
		ExportedAt time.Time               `json:"exportedAt"`
		Count      int                     `json:"count"`
		Receipts   []entity.ReceiptSummary `json:"receipts"`
		Stats      *bulkops.Stats          `json:"stats,omitempty"`
	}{
		ExportedAt: time.Now().UTC(),
		Count:      len(recs),
		Receipts:   recs,
		Stats:      stats,
	}
	return json.MarshalIndent(envelope, "", "  ")
}

func renderXLSX(recs []entity.ReceiptSummary, stats *bulkops.Stats) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for rowIdx, r := range recs {
		for colIdx, v := range rowValues(r) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 38) // id
	_ = f.SetColWidth(sheet, "B", "B", 28) // merchant
	_ = f.SetColWidth(sheet, "C", "D", 14) // total, date
	_ = f.SetColWidth(sheet, "E", "F", 22) // categories
	_ = f.SetColWidth(sheet, "H", "H", 48) // summary
	_ = f.SetColWidth(sheet, "I", "I", 60) // url

	if stats != nil {
		const summary = "Summary"
		if _, err := f.NewSheet(summary); err != nil {
			return nil, err
		}
		_ = f.SetCellValue(summary, "A1", "Receipts")
		_ = f.SetCellValue(summary, "B1", stats.ReceiptCount)
		_ = f.SetCellValue(summary, "A2", "Total amount")
		_ = f.SetCellValue(summary, "B2", stats.TotalAmount)
		_ = f.SetCellValue(summary, "A3", "Average amount")
		_ = f.SetCellValue(summary, "B3", stats.AverageAmount)
		row := 5
		_ = f.SetCellValue(summary, "A4", "Category")
		_ = f.SetCellValue(summary, "B4", "Count")
		_ = f.SetCellValue(summary, "C4", "Total")
		for _, c := range stats.ByCategory {
			_ = f.SetCellValue(summary, fmt.Sprintf("A%d", row), c.Category)
			_ = f.SetCellValue(summary, fmt.Sprintf("B%d", row), c.Count)
			_ = f.SetCellValue(summary, fmt.Sprintf("C%d", row), c.Total)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPDF(recs []entity.ReceiptSummary, stats *bulkops.Stats) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Receipts Export", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Receipts Export")
	pdf.Ln(12)

	widths := []float64{30, 50, 22, 26, 34, 34, 80}
	headers := []string{"Date", "Merchant", "Total", "Confidence", "Category", "Subcategory", "Summary"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, r := range recs {
		confidence := ""
		if r.ConfidenceScore != nil {
			confidence = fmt.Sprintf("%.2f", *r.ConfidenceScore)
		}
		cells := []string{
			r.PurchaseDate.Format("2006-01-02"),
			truncate(r.Merchant, 32),
			fmt.Sprintf("%.2f", r.Total),
			confidence,
			truncate(deref(r.Category), 20),
			truncate(deref(r.Subcategory), 20),
			truncate(deref(r.Summary), 52),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if stats != nil {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 8, fmt.Sprintf("%d receipts, %.2f total, %.2f average",
			stats.ReceiptCount, stats.TotalAmount, stats.AverageAmount))
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "", 9)
		for _, c := range stats.ByCategory {
			pdf.Cell(0, 6, fmt.Sprintf("%s: %d receipts, %.2f", c.Category, c.Count, c.Total))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// truncate shortens s to at most n runes, never splitting a multi-byte
// rune at the cut point.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}

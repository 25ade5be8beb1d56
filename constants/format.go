package constants

import "strings"

// ExportFormat identifies an export payload encoding.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
	FormatPDF  ExportFormat = "pdf"
	FormatXLSX ExportFormat = "xlsx"
)

var allFormats = []ExportFormat{FormatCSV, FormatJSON, FormatPDF, FormatXLSX}

// ParseExportFormat maps user input to a known format (case-insensitive).
func ParseExportFormat(input string) (ExportFormat, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, f := range allFormats {
		if normalized == string(f) {
			return f, true
		}
	}
	return "", false
}

// ContentType returns the MIME type for the format.
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// Ext returns the file extension (without dot) for the format.
func (f ExportFormat) Ext() string {
	return string(f)
}

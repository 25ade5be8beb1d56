package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/xyzruben/steward/constants"
	"github.com/xyzruben/steward/internal/bulkops"
	"github.com/xyzruben/steward/internal/entity"
)

func ptr[T any](v T) *T { return &v }

func sampleReceipts() []entity.ReceiptSummary {
	return []entity.ReceiptSummary{
		{
			ID:              uuid.New(),
			Merchant:        "Walmart",
			Total:           45.67,
			PurchaseDate:    time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			Category:        ptr("Groceries"),
			ConfidenceScore: ptr(0.95),
			Summary:         ptr("weekly groceries run"),
			ImageURL:        "/receipts/a.jpg",
		},
		{
			ID:           uuid.New(),
			Merchant:     "Shell",
			Total:        35.00,
			PurchaseDate: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
			ImageURL:     "/receipts/b.jpg",
		},
	}
}

func TestFormat_CSV(t *testing.T) {
	t.Parallel()

	recs := sampleReceipts()
	payload, err := NewFormatter(nil).Format(recs, constants.FormatCSV, nil)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", payload.ContentType)
	assert.True(t, strings.HasSuffix(payload.Filename, ".csv"), payload.Filename)
	assert.Equal(t, len(payload.Bytes), payload.Size)

	rows, err := csv.NewReader(bytes.NewReader(payload.Bytes)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])
	assert.Equal(t, recs[0].ID.String(), rows[1][0])
	assert.Equal(t, "Walmart", rows[1][1])
	assert.Equal(t, "45.67", rows[1][2])
	assert.Equal(t, "2024-06-15", rows[1][3])
	assert.Equal(t, "Groceries", rows[1][4])
	assert.Equal(t, "0.95", rows[1][6])

	// Optional fields render as empty cells.
	assert.Equal(t, "", rows[2][4])
	assert.Equal(t, "", rows[2][6])
}

func TestFormat_CSVWithStats(t *testing.T) {
	t.Parallel()

	recs := sampleReceipts()
	payload, err := NewFormatter(nil).Format(recs, constants.FormatCSV, bulkops.SummarizeReceipts(recs))
	require.NoError(t, err)

	text := string(payload.Bytes)
	assert.Contains(t, text, "Category,Count,Total")
	assert.Contains(t, text, "Groceries,1,45.67")
	assert.Contains(t, text, "Uncategorized,1,35.00")
}

func TestFormat_JSON(t *testing.T) {
	t.Parallel()

	recs := sampleReceipts()
	payload, err := NewFormatter(nil).Format(recs, constants.FormatJSON, bulkops.SummarizeReceipts(recs))
	require.NoError(t, err)

	assert.Equal(t, "application/json", payload.ContentType)

	var envelope struct {
		ExportedAt time.Time               `json:"exportedAt"`
		Count      int                     `json:"count"`
		Receipts   []entity.ReceiptSummary `json:"receipts"`
		Stats      *bulkops.Stats          `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(payload.Bytes, &envelope))

	assert.Equal(t, 2, envelope.Count)
	require.Len(t, envelope.Receipts, 2)
	assert.Equal(t, recs[0].ID, envelope.Receipts[0].ID)
	require.NotNil(t, envelope.Stats)
	assert.Equal(t, 2, envelope.Stats.ReceiptCount)
	assert.False(t, envelope.ExportedAt.IsZero())
}

func TestFormat_XLSX(t *testing.T) {
	t.Parallel()

	recs := sampleReceipts()
	payload, err := NewFormatter(nil).Format(recs, constants.FormatXLSX, bulkops.SummarizeReceipts(recs))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload.Bytes))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Receipts")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Walmart", rows[1][1])

	got, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestFormat_PDF(t *testing.T) {
	t.Parallel()

	payload, err := NewFormatter(nil).Format(sampleReceipts(), constants.FormatPDF, nil)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", payload.ContentType)
	assert.True(t, bytes.HasPrefix(payload.Bytes, []byte("%PDF")))
	assert.Greater(t, payload.Size, 500)
}

func TestFormat_EmptySelection(t *testing.T) {
	t.Parallel()

	for _, format := range []constants.ExportFormat{
		constants.FormatCSV, constants.FormatJSON, constants.FormatPDF, constants.FormatXLSX,
	} {
		payload, err := NewFormatter(nil).Format(nil, format, nil)
		require.NoError(t, err, format)
		assert.NotEmpty(t, payload.Bytes, format)
	}
}

func TestFormat_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := NewFormatter(nil).Format(sampleReceipts(), constants.ExportFormat("docx"), nil)
	assert.Error(t, err)
}

func TestTruncate_CountsRunesNotBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short ascii unchanged", "Walmart", 32, "Walmart"},
		{"ascii cut", "abcdefgh", 5, "abcd…"},
		{"multibyte fits", "Müller Bäckerei", 20, "Müller Bäckerei"},
		{"cut inside multibyte text", "Müller Bäckerei München", 10, "Müller Bä…"},
		{"cjk", "全家便利商店台北店", 4, "全家便…"},
		{"cut to one rune", "héllo", 1, "h"},
		{"zero keeps input", "héllo", 0, "héllo"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := truncate(tc.in, tc.n)
			assert.Equal(t, tc.want, got)
			assert.True(t, utf8.ValidString(got))
			if tc.n > 0 {
				assert.LessOrEqual(t, utf8.RuneCountInString(got), tc.n)
			}
		})
	}
}

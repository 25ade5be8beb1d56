package bulkops

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyzruben/steward/internal/entity"
)

func TestSummarizeReceipts(t *testing.T) {
	t.Parallel()

	recs := []entity.ReceiptSummary{
		{Merchant: "Walmart", Total: 45.67, PurchaseDate: day(2024, 6, 15), Category: ptr("Groceries")},
		{Merchant: "Shell", Total: 35.00, PurchaseDate: day(2024, 6, 2), Category: ptr("Gas")},
		{Merchant: "Target", Total: 12.50, PurchaseDate: day(2024, 5, 20), Category: ptr("Groceries")},
		{Merchant: "Kiosk", Total: 5.00, PurchaseDate: day(2024, 5, 3)},
	}

	st := SummarizeReceipts(recs)

	assert.Equal(t, 4, st.ReceiptCount)
	assert.InDelta(t, 98.17, st.TotalAmount, 0.001)
	assert.InDelta(t, 98.17/4, st.AverageAmount, 0.001)

	require.Len(t, st.ByCategory, 3)
	assert.Equal(t, "Groceries", st.ByCategory[0].Category)
	assert.InDelta(t, 58.17, st.ByCategory[0].Total, 0.001)
	assert.Equal(t, "Gas", st.ByCategory[1].Category)
	assert.Equal(t, "Uncategorized", st.ByCategory[2].Category)
	assert.Equal(t, 1, st.ByCategory[2].Count)

	require.Len(t, st.ByMonth, 2)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), st.ByMonth[0].Month)
	assert.Equal(t, 2, st.ByMonth[0].Count)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), st.ByMonth[1].Month)
	assert.InDelta(t, 17.50, st.ByMonth[1].Total, 0.001)
}

func TestSummarizeReceipts_Empty(t *testing.T) {
	t.Parallel()

	st := SummarizeReceipts(nil)
	assert.Zero(t, st.ReceiptCount)
	assert.Zero(t, st.TotalAmount)
	assert.Zero(t, st.AverageAmount)
	assert.Empty(t, st.ByCategory)
	assert.Empty(t, st.ByMonth)
}

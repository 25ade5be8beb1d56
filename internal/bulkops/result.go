package bulkops

import (
	"time"

	"github.com/google/uuid"

	"github.com/xyzruben/steward/internal/entity"
)

// AppliedFilter echoes back what a result was computed from: the filter for
// read paths, the explicit id list for export preparation.
type AppliedFilter struct {
	Filter     *Filter     `json:"filter,omitempty"`
	ReceiptIDs []uuid.UUID `json:"receiptIds,omitempty"`
}

// FilterResult is the outcome of a read/filter operation.
type FilterResult struct {
	Receipts      []entity.ReceiptSummary `json:"receipts"`
	TotalCount    int                     `json:"totalCount"`
	FilteredCount int                     `json:"filteredCount"`
	Applied       AppliedFilter           `json:"appliedFilters"`
}

// ItemError records the failure of a single receipt within a batch.
type ItemError struct {
	ReceiptID uuid.UUID `json:"receiptId"`
	Message   string    `json:"error"`
}

// OperationResult is the uniform outcome shape of a bulk mutation, for both
// the success and the failure path.
type OperationResult struct {
	Success        bool          `json:"success"`
	ProcessedCount int           `json:"processedCount"`
	SuccessCount   int           `json:"successCount"`
	ErrorCount     int           `json:"errorCount"`
	Errors         []ItemError   `json:"errors,omitempty"`
	OperationID    string        `json:"operationId"`
	Duration       time.Duration `json:"duration"`
}

// FilterOptions carries the distinct values and observed bounds used to
// populate filter UI controls.
type FilterOptions struct {
	Categories  []string  `json:"categories"`
	Merchants   []string  `json:"merchants"`
	DateMin     time.Time `json:"dateMin"`
	DateMax     time.Time `json:"dateMax"`
	AmountMin   float64   `json:"amountMin"`
	AmountMax   float64   `json:"amountMax"`
	HasReceipts bool      `json:"hasReceipts"`
}

// CategoryStat is one row of the per-category breakdown.
type CategoryStat struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
}

// MonthStat is one row of the per-month breakdown. Month is truncated to
// the first of the month, UTC.
type MonthStat struct {
	Month time.Time `json:"month"`
	Count int       `json:"count"`
	Total float64   `json:"total"`
}

// Stats aggregates a user's receipts, optionally constrained by a filter.
type Stats struct {
	ReceiptCount  int            `json:"receiptCount"`
	TotalAmount   float64        `json:"totalAmount"`
	AverageAmount float64        `json:"averageAmount"`
	ByCategory    []CategoryStat `json:"byCategory"`
	ByMonth       []MonthStat    `json:"byMonth"`
}

// newOperationID builds a per-call identifier for log correlation. Not
// globally coordinated; a timestamp plus a random suffix is enough to grep
// one batch out of the logs.
func newOperationID(op string) string {
	return op + "_" + time.Now().UTC().Format("20060102T150405") + "_" + uuid.NewString()[:8]
}

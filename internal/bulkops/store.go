package bulkops

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/xyzruben/steward/internal/entity"
)

// Store is what the bulk services need from the storage layer. Every method
// is scoped by userID in addition to whatever predicate or id list it takes;
// implementations must never return or touch another user's rows.
//
// The ent/pgx implementation lives in internal/repository.
type Store interface {
	// CountAll returns the user's total receipt count, unfiltered.
	CountAll(ctx context.Context, userID uuid.UUID) (int, error)

	// FilterReceipts returns the projection of receipts matching p,
	// ordered by purchase_date descending.
	FilterReceipts(ctx context.Context, userID uuid.UUID, p Predicate) ([]entity.ReceiptSummary, error)

	// FilterReceiptIDs returns only the ids of receipts matching p.
	FilterReceiptIDs(ctx context.Context, userID uuid.UUID, p Predicate) ([]uuid.UUID, error)

	// FetchOwnedIDs returns the subset of ids that exist and belong to
	// the user.
	FetchOwnedIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)

	// FetchByIDs returns the projection for the given owned ids, ordered
	// by purchase_date descending.
	FetchByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]entity.ReceiptSummary, error)

	// UpdateByIDs applies the sparse patch to all rows in ids owned by
	// the user as one batch statement and returns the number of rows
	// actually modified.
	UpdateByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, patch Update) (int, error)

	// DeleteByIDs removes all rows in ids owned by the user as one batch
	// statement and returns the number of rows removed.
	DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)

	// DistinctCategories and DistinctMerchants return the sorted distinct
	// values present in the user's receipts.
	DistinctCategories(ctx context.Context, userID uuid.UUID) ([]string, error)
	DistinctMerchants(ctx context.Context, userID uuid.UUID) ([]string, error)

	// DateBounds and AmountBounds return the observed min/max over all of
	// the user's receipts; ok is false when the user has none.
	DateBounds(ctx context.Context, userID uuid.UUID) (min, max time.Time, ok bool, err error)
	AmountBounds(ctx context.Context, userID uuid.UUID) (min, max float64, ok bool, err error)

	// Aggregate returns count, sum and mean of total over the receipts
	// matching p.
	Aggregate(ctx context.Context, userID uuid.UUID, p Predicate) (AggregateRow, error)

	// CategoryBreakdown groups receipts matching p by category.
	CategoryBreakdown(ctx context.Context, userID uuid.UUID, p Predicate) ([]CategoryStat, error)

	// MonthlyBreakdown buckets receipts matching p by calendar month,
	// most recent first, at most months rows.
	MonthlyBreakdown(ctx context.Context, userID uuid.UUID, p Predicate, months int) ([]MonthStat, error)
}

// AggregateRow is the raw count/sum/avg triple the store computes in one
// pass.
type AggregateRow struct {
	Count int
	Sum   float64
	Avg   float64
}

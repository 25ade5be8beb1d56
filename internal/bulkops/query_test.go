package bulkops

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyzruben/steward/internal/cache"
	"github.com/xyzruben/steward/internal/common"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedScenario gives the owner three receipts spread over two months plus
// one receipt belonging to somebody else.
func seedScenario(owner, stranger uuid.UUID) *memStore {
	return newMemStore(
		receiptFixture(owner, "Walmart", 45.67, day(2024, 6, 15),
			withCategory("Groceries"), withConfidence(0.95), withSummary("weekly groceries run"), withRawText("WALMART SUPERCENTER #1234")),
		receiptFixture(owner, "Shell", 35.00, day(2024, 6, 2),
			withCategory("Gas"), withConfidence(0.6)),
		receiptFixture(owner, "Target", 12.50, day(2024, 5, 20),
			withCategory("Groceries"), withSubcategory("Snacks"), withSummary("walmart price matched snacks")),
		receiptFixture(stranger, "Walmart", 99.99, day(2024, 6, 10),
			withCategory("Groceries")),
	)
}

func TestFilterReceipts_EmptyFilterReturnsEverything(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	svc := NewQueryService(seedScenario(owner, stranger), nil, 0, nil)

	res, err := svc.FilterReceipts(context.Background(), owner, Filter{})
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalCount)
	assert.Equal(t, 3, res.FilteredCount)
	assert.Len(t, res.Receipts, 3)
	require.NotNil(t, res.Applied.Filter)
	assert.Equal(t, Filter{}, *res.Applied.Filter)

	// Ordered by purchase date, newest first.
	assert.Equal(t, "Walmart", res.Receipts[0].Merchant)
	assert.Equal(t, "Shell", res.Receipts[1].Merchant)
	assert.Equal(t, "Target", res.Receipts[2].Merchant)
}

func TestFilterReceipts_NeverLeaksOtherOwners(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	svc := NewQueryService(seedScenario(owner, stranger), nil, 0, nil)

	res, err := svc.FilterReceipts(context.Background(), stranger, Filter{})
	require.NoError(t, err)
	require.Len(t, res.Receipts, 1)
	assert.Equal(t, 99.99, res.Receipts[0].Total)
}

func TestFilterReceipts_AmountBoundsAreInclusive(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	svc := NewQueryService(seedScenario(owner, stranger), nil, 0, nil)

	// 45.67 and 35.00 fall inside [30, 50]; 12.50 does not. The lower
	// bound sits exactly on 35.00 in the second case to pin inclusivity.
	res, err := svc.FilterReceipts(context.Background(), owner, Filter{
		AmountRange: &AmountRange{Min: ptr(30.0), Max: ptr(50.0)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.FilteredCount)
	assert.Equal(t, 3, res.TotalCount)

	res, err = svc.FilterReceipts(context.Background(), owner, Filter{
		AmountRange: &AmountRange{Min: ptr(35.0), Max: ptr(35.0)},
	})
	require.NoError(t, err)
	require.Len(t, res.Receipts, 1)
	assert.Equal(t, "Shell", res.Receipts[0].Merchant)
}

func TestFilterReceipts_DateRangeInclusive(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	svc := NewQueryService(seedScenario(owner, stranger), nil, 0, nil)

	start, end := day(2024, 6, 2), day(2024, 6, 15)
	res, err := svc.FilterReceipts(context.Background(), owner, Filter{
		DateRange: &DateRange{Start: &start, End: &end},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.FilteredCount)
}

func TestFilterReceipts_SearchMatchesAcrossTextFields(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	svc := NewQueryService(seedScenario(owner, stranger), nil, 0, nil)

	// "walmart" appears in one merchant name, one raw text, and one
	// summary; the match is case-insensitive and ORed across fields.
	res, err := svc.FilterReceipts(context.Background(), owner, Filter{SearchQuery: "WALMART"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.FilteredCount)

	res, err = svc.FilterReceipts(context.Background(), owner, Filter{SearchQuery: "snacks"})
	require.NoError(t, err)
	require.Len(t, res.Receipts, 1)
	assert.Equal(t, "Target", res.Receipts[0].Merchant)
}

func TestFilterReceipts_SearchTextIsLiteral(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	store := newMemStore(
		receiptFixture(owner, "Outlet", 10, day(2024, 6, 1), withSummary("save 50% today")),
		receiptFixture(owner, "Outlet", 10, day(2024, 6, 2), withSummary("save 50 dollars")),
	)
	svc := NewQueryService(store, nil, 0, nil)

	// "%" is part of the search text, not a wildcard.
	res, err := svc.FilterReceipts(context.Background(), owner, Filter{SearchQuery: "50%"})
	require.NoError(t, err)
	require.Len(t, res.Receipts, 1)
	require.NotNil(t, res.Receipts[0].Summary)
	assert.Equal(t, "save 50% today", *res.Receipts[0].Summary)
}

func TestFilterReceipts_CombinedConstraintsIntersect(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	svc := NewQueryService(seedScenario(owner, stranger), nil, 0, nil)

	res, err := svc.FilterReceipts(context.Background(), owner, Filter{
		Categories:      []string{"Groceries"},
		ConfidenceScore: &ScoreRange{Min: ptr(0.9)},
		HasSummary:      ptr(true),
	})
	require.NoError(t, err)
	require.Len(t, res.Receipts, 1)
	assert.Equal(t, "Walmart", res.Receipts[0].Merchant)
}

func TestFilterReceipts_IsReadOnlyAndRepeatable(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	svc := NewQueryService(seedScenario(owner, stranger), nil, 0, nil)
	f := Filter{Merchants: []string{"Walmart", "Shell"}}

	first, err := svc.FilterReceipts(context.Background(), owner, f)
	require.NoError(t, err)
	second, err := svc.FilterReceipts(context.Background(), owner, f)
	require.NoError(t, err)
	assert.Equal(t, first.FilteredCount, second.FilteredCount)
	assert.Equal(t, first.TotalCount, second.TotalCount)
	assert.Equal(t, first.Receipts, second.Receipts)
}

func TestFilterReceipts_InvalidFilterDoesNotHitStorage(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	store := newMemStore()
	store.failWith = errors.New("store must not be called")
	svc := NewQueryService(store, nil, 0, nil)

	_, err := svc.FilterReceipts(context.Background(), owner, Filter{
		AmountRange: &AmountRange{Min: ptr(-1.0)},
	})
	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestFilterReceipts_StorageFailureIsWrapped(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	store := newMemStore()
	store.failWith = errors.New("connection reset")
	svc := NewQueryService(store, nil, 0, nil)

	_, err := svc.FilterReceipts(context.Background(), owner, Filter{})
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FILTER_FAILED", appErr.Code)
	assert.Equal(t, "failed to filter receipts", appErr.Message)
}

func TestFilterReceiptIDs(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	svc := NewQueryService(store, nil, 0, nil)

	ids, err := svc.FilterReceiptIDs(context.Background(), owner, Filter{Categories: []string{"Groceries"}})
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	// IDs line up with what the full projection returns.
	res, err := svc.FilterReceipts(context.Background(), owner, Filter{Categories: []string{"Groceries"}})
	require.NoError(t, err)
	for i, r := range res.Receipts {
		assert.Equal(t, r.ID, ids[i])
	}
}

func TestFilterOptions(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	svc := NewQueryService(seedScenario(owner, stranger), nil, 0, nil)

	opts, err := svc.FilterOptions(context.Background(), owner)
	require.NoError(t, err)

	assert.Equal(t, []string{"Gas", "Groceries"}, opts.Categories)
	assert.Equal(t, []string{"Shell", "Target", "Walmart"}, opts.Merchants)
	assert.Equal(t, day(2024, 5, 20), opts.DateMin)
	assert.Equal(t, day(2024, 6, 15), opts.DateMax)
	assert.Equal(t, 12.50, opts.AmountMin)
	assert.Equal(t, 45.67, opts.AmountMax)
	assert.True(t, opts.HasReceipts)
}

func TestFilterOptions_NoReceipts(t *testing.T) {
	t.Parallel()

	svc := NewQueryService(newMemStore(), nil, 0, nil)

	before := time.Now().UTC()
	opts, err := svc.FilterOptions(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Empty(t, opts.Categories)
	assert.NotNil(t, opts.Categories)
	assert.Empty(t, opts.Merchants)
	assert.NotNil(t, opts.Merchants)
	assert.False(t, opts.HasReceipts)
	assert.Equal(t, opts.DateMin, opts.DateMax)
	assert.False(t, opts.DateMin.Before(before))
	assert.Zero(t, opts.AmountMin)
	assert.Zero(t, opts.AmountMax)
}

func TestFilterOptions_ServedFromCacheUntilInvalidated(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	mem := cache.NewMemoryCache()
	queries := NewQueryService(store, mem, time.Minute, nil)
	mutations := NewMutationService(store, mem, nil)

	first, err := queries.FilterOptions(context.Background(), owner)
	require.NoError(t, err)

	// A write that bypasses the mutation service leaves the cache stale.
	store.receipts[uuid.New()] = receiptFixture(owner, "Costco", 200, day(2024, 7, 1))
	cached, err := queries.FilterOptions(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, first.Merchants, cached.Merchants)

	// A bulk mutation invalidates the owner's entries.
	ids, err := queries.FilterReceiptIDs(context.Background(), owner, Filter{Merchants: []string{"Shell"}})
	require.NoError(t, err)
	_, err = mutations.BulkDelete(context.Background(), owner, ids)
	require.NoError(t, err)

	fresh, err := queries.FilterOptions(context.Background(), owner)
	require.NoError(t, err)
	assert.Contains(t, fresh.Merchants, "Costco")
	assert.NotContains(t, fresh.Merchants, "Shell")
}

func TestReceiptStats_Unfiltered(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	svc := NewQueryService(seedScenario(owner, stranger), nil, 0, nil)

	st, err := svc.ReceiptStats(context.Background(), owner, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, st.ReceiptCount)
	assert.InDelta(t, 93.17, st.TotalAmount, 0.001)
	assert.InDelta(t, 93.17/3, st.AverageAmount, 0.001)

	// Category rows sorted by total descending.
	require.Len(t, st.ByCategory, 2)
	assert.Equal(t, "Groceries", st.ByCategory[0].Category)
	assert.Equal(t, 2, st.ByCategory[0].Count)
	assert.InDelta(t, 58.17, st.ByCategory[0].Total, 0.001)
	assert.Equal(t, "Gas", st.ByCategory[1].Category)

	// Monthly rows most recent first.
	require.Len(t, st.ByMonth, 2)
	assert.Equal(t, day(2024, 6, 1), st.ByMonth[0].Month)
	assert.Equal(t, 2, st.ByMonth[0].Count)
	assert.Equal(t, day(2024, 5, 1), st.ByMonth[1].Month)
	assert.InDelta(t, 12.50, st.ByMonth[1].Total, 0.001)
}

func TestReceiptStats_Filtered(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	svc := NewQueryService(seedScenario(owner, stranger), nil, 0, nil)

	st, err := svc.ReceiptStats(context.Background(), owner, &Filter{Categories: []string{"Gas"}})
	require.NoError(t, err)
	assert.Equal(t, 1, st.ReceiptCount)
	assert.InDelta(t, 35.00, st.TotalAmount, 0.001)
}

func TestReceiptStats_StorageFailureIsWrapped(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	store := newMemStore()
	store.failWith = errors.New("timeout")
	store.failOn = "CategoryBreakdown"
	svc := NewQueryService(store, nil, 0, nil)

	_, err := svc.ReceiptStats(context.Background(), owner, nil)
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STATS_FAILED", appErr.Code)
	assert.Equal(t, "failed to get receipt statistics", appErr.Message)
}

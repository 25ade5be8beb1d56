package bulkops

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/xyzruben/steward/internal/cache"
)

// QueryService executes filter-derived predicates against storage, always
// additionally scoped by the owning user id. Filtering is read-only and
// advisory; mutation goes through MutationService with an explicit id list.
type QueryService struct {
	store    Store
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewQueryService creates a new bulk query service. cache may be nil to
// disable caching of filter options and stats.
func NewQueryService(store Store, c cache.Cache, ttl time.Duration, logger *slog.Logger) *QueryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryService{
		store:    store,
		cache:    c,
		cacheTTL: ttl,
		logger:   logger,
	}
}

// FilterReceipts validates and compiles the filter, then returns the
// matching projection together with the user's unfiltered total count and
// the echoed filter.
func (s *QueryService) FilterReceipts(ctx context.Context, userID uuid.UUID, f Filter) (*FilterResult, error) {
	pred, err := Compile(f)
	if err != nil {
		return nil, err
	}

	total, err := s.store.CountAll(ctx, userID)
	if err != nil {
		s.logger.Error("failed to count receipts", "user_id", userID, "error", err)
		return nil, wrapStorageErr(codeFilterFailed, "failed to filter receipts", err)
	}

	recs, err := s.store.FilterReceipts(ctx, userID, pred)
	if err != nil {
		s.logger.Error("failed to filter receipts", "user_id", userID, "error", err)
		return nil, wrapStorageErr(codeFilterFailed, "failed to filter receipts", err)
	}

	echo := f
	return &FilterResult{
		Receipts:      recs,
		TotalCount:    total,
		FilteredCount: len(recs),
		Applied:       AppliedFilter{Filter: &echo},
	}, nil
}

// FilterReceiptIDs returns just the ids matching the filter, for
// materializing a selection set without transferring full rows.
func (s *QueryService) FilterReceiptIDs(ctx context.Context, userID uuid.UUID, f Filter) ([]uuid.UUID, error) {
	pred, err := Compile(f)
	if err != nil {
		return nil, err
	}

	ids, err := s.store.FilterReceiptIDs(ctx, userID, pred)
	if err != nil {
		s.logger.Error("failed to filter receipt ids", "user_id", userID, "error", err)
		return nil, wrapStorageErr(codeFilterFailed, "failed to filter receipts", err)
	}
	return ids, nil
}

// FilterOptions computes the distinct categories and merchants plus the
// observed date and amount bounds for the user, to seed filter controls.
// The four reads are independent and run concurrently. A user with no
// receipts gets empty lists and degenerate ranges (now/now and 0/0).
func (s *QueryService) FilterOptions(ctx context.Context, userID uuid.UUID) (*FilterOptions, error) {
	key := optionsKey(userID)
	if cached, ok := s.cacheGet(ctx, key); ok {
		var opts FilterOptions
		if err := json.Unmarshal(cached, &opts); err == nil {
			return &opts, nil
		}
	}

	var opts FilterOptions
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cats, err := s.store.DistinctCategories(gctx, userID)
		opts.Categories = cats
		return err
	})
	g.Go(func() error {
		merchants, err := s.store.DistinctMerchants(gctx, userID)
		opts.Merchants = merchants
		return err
	})
	g.Go(func() error {
		min, max, ok, err := s.store.DateBounds(gctx, userID)
		if err != nil {
			return err
		}
		if ok {
			opts.DateMin, opts.DateMax = min, max
			opts.HasReceipts = true
		}
		return nil
	})
	g.Go(func() error {
		min, max, ok, err := s.store.AmountBounds(gctx, userID)
		if err != nil {
			return err
		}
		if ok {
			opts.AmountMin, opts.AmountMax = min, max
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to get filter options", "user_id", userID, "error", err)
		return nil, wrapStorageErr(codeOptionsFailed, "failed to get filter options", err)
	}

	if opts.Categories == nil {
		opts.Categories = []string{}
	}
	if opts.Merchants == nil {
		opts.Merchants = []string{}
	}
	if !opts.HasReceipts {
		now := time.Now().UTC()
		opts.DateMin, opts.DateMax = now, now
	}

	s.cacheSet(ctx, key, &opts)
	return &opts, nil
}

// ReceiptStats computes count, sum and average of total, a per-category
// breakdown, and a per-month breakdown (most recent 12 months, descending),
// all optionally constrained by f.
func (s *QueryService) ReceiptStats(ctx context.Context, userID uuid.UUID, f *Filter) (*Stats, error) {
	var filter Filter
	if f != nil {
		filter = *f
	}
	pred, err := Compile(filter)
	if err != nil {
		return nil, err
	}

	key, cacheable := statsKey(userID, filter)
	if cacheable {
		if cached, ok := s.cacheGet(ctx, key); ok {
			var st Stats
			if err := json.Unmarshal(cached, &st); err == nil {
				return &st, nil
			}
		}
	}

	agg, err := s.store.Aggregate(ctx, userID, pred)
	if err != nil {
		s.logger.Error("failed to aggregate receipts", "user_id", userID, "error", err)
		return nil, wrapStorageErr(codeStatsFailed, "failed to get receipt statistics", err)
	}
	byCategory, err := s.store.CategoryBreakdown(ctx, userID, pred)
	if err != nil {
		s.logger.Error("failed to compute category breakdown", "user_id", userID, "error", err)
		return nil, wrapStorageErr(codeStatsFailed, "failed to get receipt statistics", err)
	}
	byMonth, err := s.store.MonthlyBreakdown(ctx, userID, pred, 12)
	if err != nil {
		s.logger.Error("failed to compute monthly breakdown", "user_id", userID, "error", err)
		return nil, wrapStorageErr(codeStatsFailed, "failed to get receipt statistics", err)
	}

	st := &Stats{
		ReceiptCount:  agg.Count,
		TotalAmount:   agg.Sum,
		AverageAmount: agg.Avg,
		ByCategory:    byCategory,
		ByMonth:       byMonth,
	}
	if cacheable {
		s.cacheSet(ctx, key, st)
	}
	return st, nil
}

// Cache plumbing. Keys are prefixed by user so mutations can invalidate a
// single owner without touching anyone else's entries.

func ownerPrefix(userID uuid.UUID) string {
	return "bulk:" + userID.String() + ":"
}

func optionsKey(userID uuid.UUID) string {
	return ownerPrefix(userID) + "options"
}

func statsKey(userID uuid.UUID, f Filter) (string, bool) {
	raw, err := json.Marshal(f)
	if err != nil {
		return "", false
	}
	h := fnv.New64a()
	_, _ = h.Write(raw)
	return fmt.Sprintf("%sstats:%x", ownerPrefix(userID), h.Sum64()), true
}

func (s *QueryService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	val, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != cache.ErrNotFound {
			s.logger.Warn("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

func (s *QueryService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.logger.Warn("cache set failed", "key", key, "error", err)
	}
}

package repository

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xyzruben/steward/gen/ent"
	"github.com/xyzruben/steward/gen/ent/receipt"
	"github.com/xyzruben/steward/internal/bulkops"
	"github.com/xyzruben/steward/internal/entity"
	"github.com/xyzruben/steward/internal/utils"
)

// receiptRepository is the ent-backed bulkops.Store. The pgx pool is used
// only for the month-truncated aggregation; it may be nil (SQLite runs),
// in which case that aggregation is computed in process.
type receiptRepository struct {
	client *ent.Client
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewReceiptRepository wires the ent client (and optionally a pgx pool)
// into a bulkops.Store.
func NewReceiptRepository(client *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) bulkops.Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &receiptRepository{
		client: client,
		pool:   pool,
		logger: logger,
	}
}

func (r *receiptRepository) CountAll(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.client.Receipt.Query().
		Where(receipt.UserID(userID)).
		Count(ctx)
}

func (r *receiptRepository) FilterReceipts(ctx context.Context, userID uuid.UUID, p bulkops.Predicate) ([]entity.ReceiptSummary, error) {
	recs, err := r.client.Receipt.Query().
		Where(entPredicates(userID, p)...).
		Order(ent.Desc(receipt.FieldPurchaseDate)).
		Select(
			receipt.FieldID,
			receipt.FieldMerchant,
			receipt.FieldTotal,
			receipt.FieldPurchaseDate,
			receipt.FieldCategory,
			receipt.FieldSubcategory,
			receipt.FieldConfidenceScore,
			receipt.FieldSummary,
			receipt.FieldImageURL,
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to filter receipts", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]entity.ReceiptSummary, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReceiptSummary(rec)
	}
	return result, nil
}

func (r *receiptRepository) FilterReceiptIDs(ctx context.Context, userID uuid.UUID, p bulkops.Predicate) ([]uuid.UUID, error) {
	ids, err := r.client.Receipt.Query().
		Where(entPredicates(userID, p)...).
		Order(ent.Desc(receipt.FieldPurchaseDate)).
		IDs(ctx)
	if err != nil {
		r.logger.Error("failed to filter receipt ids", "user_id", userID, "error", err)
		return nil, err
	}
	return ids, nil
}

func (r *receiptRepository) FetchOwnedIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	return r.client.Receipt.Query().
		Where(receipt.UserID(userID), receipt.IDIn(ids...)).
		IDs(ctx)
}

func (r *receiptRepository) FetchByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]entity.ReceiptSummary, error) {
	recs, err := r.client.Receipt.Query().
		Where(receipt.UserID(userID), receipt.IDIn(ids...)).
		Order(ent.Desc(receipt.FieldPurchaseDate)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entity.ReceiptSummary, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReceiptSummary(rec)
	}
	return result, nil
}

// UpdateByIDs is one batch statement; ownership is part of the WHERE clause
// so a stale id list cannot reach across users. The updated_at stamp comes
// from the schema's UpdateDefault.
func (r *receiptRepository) UpdateByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, patch bulkops.Update) (int, error) {
	u := r.client.Receipt.Update().
		Where(receipt.UserID(userID), receipt.IDIn(ids...))
	if patch.Category != nil {
		u = u.SetCategory(*patch.Category)
	}
	if patch.Subcategory != nil {
		u = u.SetSubcategory(*patch.Subcategory)
	}
	if patch.Merchant != nil {
		u = u.SetMerchant(*patch.Merchant)
	}
	if patch.Summary != nil {
		u = u.SetSummary(*patch.Summary)
	}

	n, err := u.Save(ctx)
	if err != nil {
		r.logger.Error("batch update failed", "user_id", userID, "count", len(ids), "error", err)
		return 0, err
	}
	return n, nil
}

func (r *receiptRepository) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	n, err := r.client.Receipt.Delete().
		Where(receipt.UserID(userID), receipt.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("batch delete failed", "user_id", userID, "count", len(ids), "error", err)
		return 0, err
	}
	return n, nil
}

func (r *receiptRepository) DistinctCategories(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return r.client.Receipt.Query().
		Where(receipt.UserID(userID), receipt.CategoryNotNil()).
		Order(ent.Asc(receipt.FieldCategory)).
		Unique(true).
		Select(receipt.FieldCategory).
		Strings(ctx)
}

func (r *receiptRepository) DistinctMerchants(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return r.client.Receipt.Query().
		Where(receipt.UserID(userID)).
		Order(ent.Asc(receipt.FieldMerchant)).
		Unique(true).
		Select(receipt.FieldMerchant).
		Strings(ctx)
}

func (r *receiptRepository) DateBounds(ctx context.Context, userID uuid.UUID) (time.Time, time.Time, bool, error) {
	var rows []struct {
		Min *time.Time `json:"min"`
		Max *time.Time `json:"max"`
	}
	err := r.client.Receipt.Query().
		Where(receipt.UserID(userID)).
		Aggregate(
			ent.As(ent.Min(receipt.FieldPurchaseDate), "min"),
			ent.As(ent.Max(receipt.FieldPurchaseDate), "max"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	if len(rows) == 0 || rows[0].Min == nil || rows[0].Max == nil {
		return time.Time{}, time.Time{}, false, nil
	}
	return *rows[0].Min, *rows[0].Max, true, nil
}

func (r *receiptRepository) AmountBounds(ctx context.Context, userID uuid.UUID) (float64, float64, bool, error) {
	var rows []struct {
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	}
	err := r.client.Receipt.Query().
		Where(receipt.UserID(userID)).
		Aggregate(
			ent.As(ent.Min(receipt.FieldTotal), "min"),
			ent.As(ent.Max(receipt.FieldTotal), "max"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return 0, 0, false, err
	}
	if len(rows) == 0 || rows[0].Min == nil || rows[0].Max == nil {
		return 0, 0, false, nil
	}
	return *rows[0].Min, *rows[0].Max, true, nil
}

func (r *receiptRepository) Aggregate(ctx context.Context, userID uuid.UUID, p bulkops.Predicate) (bulkops.AggregateRow, error) {
	var rows []struct {
		Count int      `json:"count"`
		Sum   *float64 `json:"sum"`
		Avg   *float64 `json:"avg"`
	}
	err := r.client.Receipt.Query().
		Where(entPredicates(userID, p)...).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(receipt.FieldTotal), "sum"),
			ent.As(ent.Mean(receipt.FieldTotal), "avg"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return bulkops.AggregateRow{}, err
	}
	if len(rows) == 0 {
		return bulkops.AggregateRow{}, nil
	}

	agg := bulkops.AggregateRow{Count: rows[0].Count}
	if rows[0].Sum != nil {
		agg.Sum = *rows[0].Sum
	}
	if rows[0].Avg != nil {
		agg.Avg = *rows[0].Avg
	}
	return agg, nil
}

func (r *receiptRepository) CategoryBreakdown(ctx context.Context, userID uuid.UUID, p bulkops.Predicate) ([]bulkops.CategoryStat, error) {
	var rows []struct {
		Category *string `json:"category"`
		Count    int     `json:"count"`
		Total    float64 `json:"total"`
	}
	err := r.client.Receipt.Query().
		Where(entPredicates(userID, p)...).
		GroupBy(receipt.FieldCategory).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(receipt.FieldTotal), "total"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	stats := make([]bulkops.CategoryStat, len(rows))
	for i, row := range rows {
		name := "Uncategorized"
		if row.Category != nil {
			name = *row.Category
		}
		stats[i] = bulkops.CategoryStat{Category: name, Count: row.Count, Total: row.Total}
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Total > stats[j].Total })
	return stats, nil
}

// MonthlyBreakdown prefers a date_trunc aggregation pushed down to
// Postgres; without a pool it falls back to bucketing in process.
func (r *receiptRepository) MonthlyBreakdown(ctx context.Context, userID uuid.UUID, p bulkops.Predicate, months int) ([]bulkops.MonthStat, error) {
	if r.pool != nil {
		return r.monthlyBreakdownSQL(ctx, userID, p, months)
	}
	return r.monthlyBreakdownLocal(ctx, userID, p, months)
}

func (r *receiptRepository) monthlyBreakdownSQL(ctx context.Context, userID uuid.UUID, p bulkops.Predicate, months int) ([]bulkops.MonthStat, error) {
	where, args := sqlWhere(p, 2)
	args = append([]any{userID}, args...)
	args = append(args, months)

	query := `SELECT date_trunc('month', purchase_date) AS month,
		COUNT(*) AS count, COALESCE(SUM(total), 0) AS total
		FROM receipts WHERE user_id = $1` + where +
		` GROUP BY 1 ORDER BY 1 DESC LIMIT $` + itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("monthly breakdown query failed", "user_id", userID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var stats []bulkops.MonthStat
	for rows.Next() {
		var (
			month time.Time
			count int64
			total float64
		)
		if err := rows.Scan(&month, &count, &total); err != nil {
			return nil, err
		}
		stats = append(stats, bulkops.MonthStat{Month: month.UTC(), Count: int(count), Total: total})
	}
	return stats, rows.Err()
}

func (r *receiptRepository) monthlyBreakdownLocal(ctx context.Context, userID uuid.UUID, p bulkops.Predicate, months int) ([]bulkops.MonthStat, error) {
	recs, err := r.client.Receipt.Query().
		Where(entPredicates(userID, p)...).
		Select(receipt.FieldPurchaseDate, receipt.FieldTotal).
		All(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make(map[time.Time]*bulkops.MonthStat)
	for _, rec := range recs {
		m := time.Date(rec.PurchaseDate.Year(), rec.PurchaseDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		stat, ok := buckets[m]
		if !ok {
			stat = &bulkops.MonthStat{Month: m}
			buckets[m] = stat
		}
		stat.Count++
		stat.Total += rec.Total
	}

	stats := make([]bulkops.MonthStat, 0, len(buckets))
	for _, stat := range buckets {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Month.After(stats[j].Month) })
	if len(stats) > months {
		stats = stats[:months]
	}
	return stats, nil
}

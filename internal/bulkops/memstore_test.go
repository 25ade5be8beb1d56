package bulkops

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xyzruben/steward/internal/entity"
)

// memStore is an in-memory Store used by the service tests. It interprets
// the compiled predicate directly, so the tests exercise the same condition
// tree the repository maps onto SQL.
type memStore struct {
	mu       sync.Mutex
	receipts map[uuid.UUID]*entity.Receipt

	// failWith, when set, makes every method return that error.
	failWith error
	// failOn restricts failWith to one named method ("" means all).
	failOn string
}

func newMemStore(recs ...*entity.Receipt) *memStore {
	s := &memStore{receipts: make(map[uuid.UUID]*entity.Receipt)}
	for _, r := range recs {
		s.receipts[r.ID] = r
	}
	return s
}

func (s *memStore) fail(method string) error {
	if s.failWith != nil && (s.failOn == "" || s.failOn == method) {
		return s.failWith
	}
	return nil
}

func (s *memStore) owned(userID uuid.UUID) []*entity.Receipt {
	var out []*entity.Receipt
	for _, r := range s.receipts {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PurchaseDate.After(out[j].PurchaseDate) })
	return out
}

func (s *memStore) matching(userID uuid.UUID, p Predicate) []*entity.Receipt {
	var out []*entity.Receipt
	for _, r := range s.owned(userID) {
		if matches(r, p) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r *entity.Receipt, p Predicate) bool {
	for _, c := range p.Conditions {
		if !matchCond(r, c) {
			return false
		}
	}
	return true
}

func matchCond(r *entity.Receipt, c Condition) bool {
	switch c.Op {
	case OpGTE:
		switch c.Field {
		case FieldPurchaseDate:
			return !r.PurchaseDate.Before(c.Time)
		case FieldTotal:
			return r.Total >= c.Number
		case FieldConfidence:
			return r.ConfidenceScore != nil && *r.ConfidenceScore >= c.Number
		}
	case OpLTE:
		switch c.Field {
		case FieldPurchaseDate:
			return !r.PurchaseDate.After(c.Time)
		case FieldTotal:
			return r.Total <= c.Number
		case FieldConfidence:
			return r.ConfidenceScore != nil && *r.ConfidenceScore <= c.Number
		}
	case OpIn:
		val := fieldValue(r, c.Field)
		if val == nil {
			return false
		}
		for _, s := range c.Strs {
			if *val == s {
				return true
			}
		}
		return false
	case OpNotNil:
		return fieldValue(r, c.Field) != nil
	case OpIsNil:
		return fieldValue(r, c.Field) == nil
	case OpContainsFold:
		needle := strings.ToLower(c.Text)
		for _, f := range c.Fields {
			if val := fieldValue(r, f); val != nil && strings.Contains(strings.ToLower(*val), needle) {
				return true
			}
		}
		return false
	}
	return false
}

func fieldValue(r *entity.Receipt, f Field) *string {
	switch f {
	case FieldMerchant:
		return &r.Merchant
	case FieldCategory:
		return r.Category
	case FieldSubcategory:
		return r.Subcategory
	case FieldSummary:
		return r.Summary
	case FieldRawText:
		return r.RawText
	}
	return nil
}

func (s *memStore) CountAll(_ context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CountAll"); err != nil {
		return 0, err
	}
	return len(s.owned(userID)), nil
}

func (s *memStore) FilterReceipts(_ context.Context, userID uuid.UUID, p Predicate) ([]entity.ReceiptSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("FilterReceipts"); err != nil {
		return nil, err
	}
	var out []entity.ReceiptSummary
	for _, r := range s.matching(userID, p) {
		out = append(out, r.Summarize())
	}
	return out, nil
}

func (s *memStore) FilterReceiptIDs(_ context.Context, userID uuid.UUID, p Predicate) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("FilterReceiptIDs"); err != nil {
		return nil, err
	}
	var out []uuid.UUID
	for _, r := range s.matching(userID, p) {
		out = append(out, r.ID)
	}
	return out, nil
}

func (s *memStore) FetchOwnedIDs(_ context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("FetchOwnedIDs"); err != nil {
		return nil, err
	}
	var out []uuid.UUID
	for _, id := range ids {
		if r, ok := s.receipts[id]; ok && r.UserID == userID {
			out = append(out, id)
		}
	}
	return out, nil
}

func (s *memStore) FetchByIDs(_ context.Context, userID uuid.UUID, ids []uuid.UUID) ([]entity.ReceiptSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("FetchByIDs"); err != nil {
		return nil, err
	}
	want := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []entity.ReceiptSummary
	for _, r := range s.owned(userID) {
		if _, ok := want[r.ID]; ok {
			out = append(out, r.Summarize())
		}
	}
	return out, nil
}

func (s *memStore) UpdateByIDs(_ context.Context, userID uuid.UUID, ids []uuid.UUID, patch Update) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("UpdateByIDs"); err != nil {
		return 0, err
	}
	modified := 0
	for _, id := range ids {
		r, ok := s.receipts[id]
		if !ok || r.UserID != userID {
			continue
		}
		if patch.Category != nil {
			r.Category = ptr(*patch.Category)
		}
		if patch.Subcategory != nil {
			r.Subcategory = ptr(*patch.Subcategory)
		}
		if patch.Merchant != nil {
			r.Merchant = *patch.Merchant
		}
		if patch.Summary != nil {
			r.Summary = ptr(*patch.Summary)
		}
		r.UpdatedAt = time.Now().UTC()
		modified++
	}
	return modified, nil
}

func (s *memStore) DeleteByIDs(_ context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("DeleteByIDs"); err != nil {
		return 0, err
	}
	removed := 0
	for _, id := range ids {
		if r, ok := s.receipts[id]; ok && r.UserID == userID {
			delete(s.receipts, id)
			removed++
		}
	}
	return removed, nil
}

func (s *memStore) DistinctCategories(_ context.Context, userID uuid.UUID) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("DistinctCategories"); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, r := range s.owned(userID) {
		if r.Category != nil {
			seen[*r.Category] = struct{}{}
		}
	}
	return sortedKeys(seen), nil
}

func (s *memStore) DistinctMerchants(_ context.Context, userID uuid.UUID) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("DistinctMerchants"); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, r := range s.owned(userID) {
		seen[r.Merchant] = struct{}{}
	}
	return sortedKeys(seen), nil
}

func (s *memStore) DateBounds(_ context.Context, userID uuid.UUID) (time.Time, time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("DateBounds"); err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	recs := s.owned(userID)
	if len(recs) == 0 {
		return time.Time{}, time.Time{}, false, nil
	}
	min, max := recs[0].PurchaseDate, recs[0].PurchaseDate
	for _, r := range recs {
		if r.PurchaseDate.Before(min) {
			min = r.PurchaseDate
		}
		if r.PurchaseDate.After(max) {
			max = r.PurchaseDate
		}
	}
	return min, max, true, nil
}

func (s *memStore) AmountBounds(_ context.Context, userID uuid.UUID) (float64, float64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("AmountBounds"); err != nil {
		return 0, 0, false, err
	}
	recs := s.owned(userID)
	if len(recs) == 0 {
		return 0, 0, false, nil
	}
	min, max := recs[0].Total, recs[0].Total
	for _, r := range recs {
		if r.Total < min {
			min = r.Total
		}
		if r.Total > max {
			max = r.Total
		}
	}
	return min, max, true, nil
}

func (s *memStore) Aggregate(_ context.Context, userID uuid.UUID, p Predicate) (AggregateRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("Aggregate"); err != nil {
		return AggregateRow{}, err
	}
	var row AggregateRow
	for _, r := range s.matching(userID, p) {
		row.Count++
		row.Sum += r.Total
	}
	if row.Count > 0 {
		row.Avg = row.Sum / float64(row.Count)
	}
	return row, nil
}

func (s *memStore) CategoryBreakdown(_ context.Context, userID uuid.UUID, p Predicate) ([]CategoryStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CategoryBreakdown"); err != nil {
		return nil, err
	}
	byName := make(map[string]*CategoryStat)
	for _, r := range s.matching(userID, p) {
		name := "Uncategorized"
		if r.Category != nil {
			name = *r.Category
		}
		cs, ok := byName[name]
		if !ok {
			cs = &CategoryStat{Category: name}
			byName[name] = cs
		}
		cs.Count++
		cs.Total += r.Total
	}
	var out []CategoryStat
	for _, cs := range byName {
		out = append(out, *cs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out, nil
}

func (s *memStore) MonthlyBreakdown(_ context.Context, userID uuid.UUID, p Predicate, months int) ([]MonthStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("MonthlyBreakdown"); err != nil {
		return nil, err
	}
	byMonth := make(map[time.Time]*MonthStat)
	for _, r := range s.matching(userID, p) {
		m := time.Date(r.PurchaseDate.Year(), r.PurchaseDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		ms, ok := byMonth[m]
		if !ok {
			ms = &MonthStat{Month: m}
			byMonth[m] = ms
		}
		ms.Count++
		ms.Total += r.Total
	}
	var out []MonthStat
	for _, ms := range byMonth {
		out = append(out, *ms)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.After(out[j].Month) })
	if len(out) > months {
		out = out[:months]
	}
	return out, nil
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func ptr[T any](v T) *T { return &v }

// receiptFixture builds one receipt with sane defaults for tests.
func receiptFixture(userID uuid.UUID, merchant string, total float64, date time.Time, opts ...func(*entity.Receipt)) *entity.Receipt {
	r := &entity.Receipt{
		ID:           uuid.New(),
		UserID:       userID,
		Merchant:     merchant,
		Total:        total,
		PurchaseDate: date,
		ImageURL:     "/receipts/" + uuid.NewString() + ".jpg",
		Status:       "COMPLETED",
		CreatedAt:    date,
		UpdatedAt:    date,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func withCategory(c string) func(*entity.Receipt) {
	return func(r *entity.Receipt) { r.Category = ptr(c) }
}

func withSubcategory(c string) func(*entity.Receipt) {
	return func(r *entity.Receipt) { r.Subcategory = ptr(c) }
}

func withConfidence(v float64) func(*entity.Receipt) {
	return func(r *entity.Receipt) { r.ConfidenceScore = ptr(v) }
}

func withSummary(s string) func(*entity.Receipt) {
	return func(r *entity.Receipt) { r.Summary = ptr(s) }
}

func withRawText(s string) func(*entity.Receipt) {
	return func(r *entity.Receipt) { r.RawText = ptr(s) }
}

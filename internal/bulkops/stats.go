package bulkops

import (
	"sort"
	"time"

	"github.com/xyzruben/steward/internal/entity"
)

// SummarizeReceipts computes Stats over an already-materialized record set,
// e.g. the validated selection of an export. Matches the shape the storage
// aggregation produces: category rows sorted by total descending, monthly
// rows most recent first.
func SummarizeReceipts(recs []entity.ReceiptSummary) *Stats {
	st := &Stats{ReceiptCount: len(recs)}

	byCategory := make(map[string]*CategoryStat)
	byMonth := make(map[time.Time]*MonthStat)
	for _, r := range recs {
		st.TotalAmount += r.Total

		name := "Uncategorized"
		if r.Category != nil {
			name = *r.Category
		}
		cs, ok := byCategory[name]
		if !ok {
			cs = &CategoryStat{Category: name}
			byCategory[name] = cs
		}
		cs.Count++
		cs.Total += r.Total

		m := time.Date(r.PurchaseDate.Year(), r.PurchaseDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		ms, ok := byMonth[m]
		if !ok {
			ms = &MonthStat{Month: m}
			byMonth[m] = ms
		}
		ms.Count++
		ms.Total += r.Total
	}
	if st.ReceiptCount > 0 {
		st.AverageAmount = st.TotalAmount / float64(st.ReceiptCount)
	}

	st.ByCategory = make([]CategoryStat, 0, len(byCategory))
	for _, cs := range byCategory {
		st.ByCategory = append(st.ByCategory, *cs)
	}
	sort.Slice(st.ByCategory, func(i, j int) bool { return st.ByCategory[i].Total > st.ByCategory[j].Total })

	st.ByMonth = make([]MonthStat, 0, len(byMonth))
	for _, ms := range byMonth {
		st.ByMonth = append(st.ByMonth, *ms)
	}
	sort.Slice(st.ByMonth, func(i, j int) bool { return st.ByMonth[i].Month.After(st.ByMonth[j].Month) })

	return st
}

package utils

import (
	"fmt"
	"time"

	"github.com/xyzruben/steward/gen/ent"
	stewardv1 "github.com/xyzruben/steward/gen/proto/steward/v1"
	"github.com/xyzruben/steward/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToReceiptSummary converts an ent row into the filter-result projection.
func ToReceiptSummary(e *ent.Receipt) entity.ReceiptSummary {
	return entity.ReceiptSummary{
		ID:              e.ID,
		Merchant:        e.Merchant,
		Total:           e.Total,
		PurchaseDate:    e.PurchaseDate,
		Category:        e.Category,
		Subcategory:     e.Subcategory,
		ConfidenceScore: e.ConfidenceScore,
		Summary:         e.Summary,
		ImageURL:        e.ImageURL,
	}
}

// ToPBReceipt converts the projection into its wire form.
func ToPBReceipt(r entity.ReceiptSummary) *stewardv1.Receipt {
	return &stewardv1.Receipt{
		Id:              r.ID.String(),
		Merchant:        r.Merchant,
		Total:           fmt.Sprintf("%.2f", r.Total),
		PurchaseDate:    r.PurchaseDate.Format("2006-01-02"),
		Category:        strOrEmpty(r.Category),
		Subcategory:     strOrEmpty(r.Subcategory),
		ConfidenceScore: r.ConfidenceScore,
		Summary:         strOrEmpty(r.Summary),
		ImageUrl:        r.ImageURL,
	}
}

// ParseYMD parses a YYYY-MM-DD string into midnight UTC, matching the DATE
// column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

package repository

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/xyzruben/steward/gen/ent/predicate"
	"github.com/xyzruben/steward/gen/ent/receipt"
	"github.com/xyzruben/steward/internal/bulkops"
)

// entPredicates maps a compiled bulkops.Predicate onto ent predicates,
// always prepending the owner scope.
func entPredicates(userID uuid.UUID, p bulkops.Predicate) []predicate.Receipt {
	ps := make([]predicate.Receipt, 0, len(p.Conditions)+1)
	ps = append(ps, receipt.UserID(userID))

	for _, c := range p.Conditions {
		switch c.Op {
		case bulkops.OpGTE:
			switch c.Field {
			case bulkops.FieldPurchaseDate:
				ps = append(ps, receipt.PurchaseDateGTE(c.Time))
			case bulkops.FieldTotal:
				ps = append(ps, receipt.TotalGTE(c.Number))
			case bulkops.FieldConfidence:
				ps = append(ps, receipt.ConfidenceScoreGTE(c.Number))
			}
		case bulkops.OpLTE:
			switch c.Field {
			case bulkops.FieldPurchaseDate:
				ps = append(ps, receipt.PurchaseDateLTE(c.Time))
			case bulkops.FieldTotal:
				ps = append(ps, receipt.TotalLTE(c.Number))
			case bulkops.FieldConfidence:
				ps = append(ps, receipt.ConfidenceScoreLTE(c.Number))
			}
		case bulkops.OpIn:
			switch c.Field {
			case bulkops.FieldCategory:
				ps = append(ps, receipt.CategoryIn(c.Strs...))
			case bulkops.FieldMerchant:
				ps = append(ps, receipt.MerchantIn(c.Strs...))
			}
		case bulkops.OpNotNil:
			if c.Field == bulkops.FieldSummary {
				ps = append(ps, receipt.SummaryNotNil())
			}
		case bulkops.OpIsNil:
			if c.Field == bulkops.FieldSummary {
				ps = append(ps, receipt.SummaryIsNil())
			}
		case bulkops.OpContainsFold:
			ors := make([]predicate.Receipt, 0, len(c.Fields))
			for _, f := range c.Fields {
				switch f {
				case bulkops.FieldMerchant:
					ors = append(ors, receipt.MerchantContainsFold(c.Text))
				case bulkops.FieldCategory:
					ors = append(ors, receipt.CategoryContainsFold(c.Text))
				case bulkops.FieldSubcategory:
					ors = append(ors, receipt.SubcategoryContainsFold(c.Text))
				case bulkops.FieldSummary:
					ors = append(ors, receipt.SummaryContainsFold(c.Text))
				case bulkops.FieldRawText:
					ors = append(ors, receipt.RawTextContainsFold(c.Text))
				}
			}
			if len(ors) > 0 {
				ps = append(ps, receipt.Or(ors...))
			}
		}
	}
	return ps
}

// column names for the raw aggregation path; must match the ent schema.
func column(f bulkops.Field) string {
	switch f {
	case bulkops.FieldMerchant:
		return "merchant"
	case bulkops.FieldTotal:
		return "total"
	case bulkops.FieldPurchaseDate:
		return "purchase_date"
	case bulkops.FieldCategory:
		return "category"
	case bulkops.FieldSubcategory:
		return "subcategory"
	case bulkops.FieldConfidence:
		return "confidence_score"
	case bulkops.FieldSummary:
		return "summary"
	case bulkops.FieldRawText:
		return "raw_text"
	}
	return ""
}

// sqlWhere renders the predicate as " AND ..." fragments with positional
// args starting at argIdx, for queries the ent builder cannot express
// (month-truncated grouping).
func sqlWhere(p bulkops.Predicate, argIdx int) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	next := func(v any) string {
		args = append(args, v)
		n := argIdx + len(args) - 1
		return "$" + strconv.Itoa(n)
	}

	for _, c := range p.Conditions {
		switch c.Op {
		case bulkops.OpGTE, bulkops.OpLTE:
			op := ">="
			if c.Op == bulkops.OpLTE {
				op = "<="
			}
			var ph string
			if c.Field == bulkops.FieldPurchaseDate {
				ph = next(c.Time)
			} else {
				ph = next(c.Number)
			}
			sb.WriteString(" AND " + column(c.Field) + " " + op + " " + ph)
		case bulkops.OpIn:
			sb.WriteString(" AND " + column(c.Field) + " = ANY(" + next(c.Strs) + ")")
		case bulkops.OpNotNil:
			sb.WriteString(" AND " + column(c.Field) + " IS NOT NULL")
		case bulkops.OpIsNil:
			sb.WriteString(" AND " + column(c.Field) + " IS NULL")
		case bulkops.OpContainsFold:
			ph := next("%" + escapeLike(c.Text) + "%")
			parts := make([]string, len(c.Fields))
			for i, f := range c.Fields {
				parts[i] = column(f) + " ILIKE " + ph
			}
			sb.WriteString(" AND (" + strings.Join(parts, " OR ") + ")")
		}
	}
	return sb.String(), args
}

// escapeLike escapes %, _ and \ so the search text matches literally,
// exactly as the ent builder does for ContainsFold. Both renderings of a
// predicate must select the same rows.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func itoa(n int) string {
	return strconv.Itoa(n)
}

package bulkops

import (
	"strings"
	"time"

	"github.com/xyzruben/steward/internal/common"
)

// Filter is a user-supplied description of a subset of their receipts.
// Every field is optional; absence means no constraint on that dimension.
type Filter struct {
	DateRange       *DateRange   `json:"dateRange,omitempty"`
	AmountRange     *AmountRange `json:"amountRange,omitempty"`
	Categories      []string     `json:"categories,omitempty"`
	Merchants       []string     `json:"merchants,omitempty"`
	ConfidenceScore *ScoreRange  `json:"confidenceScore,omitempty"`
	HasSummary      *bool        `json:"hasSummary,omitempty"`
	SearchQuery     string       `json:"searchQuery,omitempty"`
}

// DateRange bounds purchase_date, both ends inclusive.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// AmountRange bounds total, both ends inclusive, each >= 0.
type AmountRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// ScoreRange bounds confidence_score, each end within [0,1].
type ScoreRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Update is a sparse patch applied by bulk update. Only present fields are
// written; updated_at is always set by the storage layer.
type Update struct {
	Category    *string `json:"category,omitempty"`
	Subcategory *string `json:"subcategory,omitempty"`
	Merchant    *string `json:"merchant,omitempty"`
	Summary     *string `json:"summary,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (u Update) IsEmpty() bool {
	return u.Category == nil && u.Subcategory == nil && u.Merchant == nil && u.Summary == nil
}

// Compile validates f and translates it into a Predicate. Range bounds are
// checked per field (amounts >= 0, confidence within [0,1]) and, when both
// ends of a range are present, min <= max is enforced here as well, so no
// caller has to re-check ordering. The returned error is *ValidationErrors.
//
// Compile performs no I/O.
func Compile(f Filter) (Predicate, error) {
	v := common.NewValidator()

	if dr := f.DateRange; dr != nil && dr.Start != nil && dr.End != nil && dr.Start.After(*dr.End) {
		v.Add("dateRange", dr, "start must not be after end")
	}
	if ar := f.AmountRange; ar != nil {
		if ar.Min != nil && *ar.Min < 0 {
			v.Add("amountRange.min", *ar.Min, "must be >= 0")
		}
		if ar.Max != nil && *ar.Max < 0 {
			v.Add("amountRange.max", *ar.Max, "must be >= 0")
		}
		if ar.Min != nil && ar.Max != nil && *ar.Min > *ar.Max {
			v.Add("amountRange", ar, "min must not exceed max")
		}
	}
	if cs := f.ConfidenceScore; cs != nil {
		if cs.Min != nil && (*cs.Min < 0 || *cs.Min > 1) {
			v.Add("confidenceScore.min", *cs.Min, "must be within [0,1]")
		}
		if cs.Max != nil && (*cs.Max < 0 || *cs.Max > 1) {
			v.Add("confidenceScore.max", *cs.Max, "must be within [0,1]")
		}
		if cs.Min != nil && cs.Max != nil && *cs.Min > *cs.Max {
			v.Add("confidenceScore", cs, "min must not exceed max")
		}
	}
	for _, c := range f.Categories {
		if strings.TrimSpace(c) == "" {
			v.Add("categories", c, "entries must not be blank")
			break
		}
	}
	for _, m := range f.Merchants {
		if strings.TrimSpace(m) == "" {
			v.Add("merchants", m, "entries must not be blank")
			break
		}
	}

	if v.HasErrors() {
		return Predicate{}, &ValidationErrors{Errs: v.Errors()}
	}

	var p Predicate
	if dr := f.DateRange; dr != nil {
		if dr.Start != nil {
			p.Conditions = append(p.Conditions, Condition{Op: OpGTE, Field: FieldPurchaseDate, Time: *dr.Start})
		}
		if dr.End != nil {
			p.Conditions = append(p.Conditions, Condition{Op: OpLTE, Field: FieldPurchaseDate, Time: *dr.End})
		}
	}
	if ar := f.AmountRange; ar != nil {
		if ar.Min != nil {
			p.Conditions = append(p.Conditions, Condition{Op: OpGTE, Field: FieldTotal, Number: *ar.Min})
		}
		if ar.Max != nil {
			p.Conditions = append(p.Conditions, Condition{Op: OpLTE, Field: FieldTotal, Number: *ar.Max})
		}
	}
	if len(f.Categories) > 0 {
		p.Conditions = append(p.Conditions, Condition{Op: OpIn, Field: FieldCategory, Strs: f.Categories})
	}
	if len(f.Merchants) > 0 {
		p.Conditions = append(p.Conditions, Condition{Op: OpIn, Field: FieldMerchant, Strs: f.Merchants})
	}
	if cs := f.ConfidenceScore; cs != nil {
		if cs.Min != nil {
			p.Conditions = append(p.Conditions, Condition{Op: OpGTE, Field: FieldConfidence, Number: *cs.Min})
		}
		if cs.Max != nil {
			p.Conditions = append(p.Conditions, Condition{Op: OpLTE, Field: FieldConfidence, Number: *cs.Max})
		}
	}
	if f.HasSummary != nil {
		op := OpNotNil
		if !*f.HasSummary {
			op = OpIsNil
		}
		p.Conditions = append(p.Conditions, Condition{Op: op, Field: FieldSummary})
	}
	if q := strings.TrimSpace(f.SearchQuery); q != "" {
		p.Conditions = append(p.Conditions, Condition{Op: OpContainsFold, Fields: searchFields, Text: q})
	}

	return p, nil
}

// validateUpdate checks a bulk update patch: at least one field must be
// present, and present fields must be non-blank and of sane length.
func validateUpdate(u Update) error {
	if u.IsEmpty() {
		return &ValidationErrors{Errs: []common.ValidationError{
			{Field: "updates", Value: u, Message: "at least one field must be provided"},
		}}
	}

	v := common.NewValidator()
	if u.Merchant != nil {
		v.Field("merchant", u.Merchant, common.Required, common.MaxLen(256))
	}
	if u.Category != nil {
		v.Field("category", u.Category, common.Required, common.MaxLen(128))
	}
	if u.Subcategory != nil {
		v.Field("subcategory", u.Subcategory, common.Required, common.MaxLen(128))
	}
	if u.Summary != nil {
		v.Field("summary", u.Summary, common.MaxLen(2000))
	}
	if v.HasErrors() {
		return &ValidationErrors{Errs: v.Errors()}
	}
	return nil
}

// Package bulkops implements the filter compiler and the bulk query and
// mutation services over a user's receipts. The compiler is pure: it turns a
// validated Filter into a storage-agnostic Predicate, and the repository
// layer maps that onto its query builder.
package bulkops

import "time"

// Field names a receipt column a condition applies to.
type Field int8

const (
	FieldMerchant Field = iota
	FieldTotal
	FieldPurchaseDate
	FieldCategory
	FieldSubcategory
	FieldConfidence
	FieldSummary
	FieldRawText
)

// Op is the comparison a condition performs.
type Op int8

const (
	// OpGTE and OpLTE are inclusive bounds on purchase_date (Time),
	// total or confidence_score (Number).
	OpGTE Op = iota
	OpLTE
	// OpIn matches any of Strings exactly.
	OpIn
	// OpNotNil and OpIsNil test presence of an optional field.
	OpNotNil
	OpIsNil
	// OpContainsFold matches Text as a case-insensitive substring in any
	// of Fields (OR across fields).
	OpContainsFold
)

// Condition is one ANDed constraint of a compiled filter.
type Condition struct {
	Op     Op
	Field  Field
	Fields []Field // OpContainsFold only
	Number float64
	Time   time.Time
	Strs   []string
	Text   string
}

// Predicate is the compiled, storage-agnostic form of a Filter: all
// conditions are ANDed together. An empty predicate selects every receipt
// the owner has.
type Predicate struct {
	Conditions []Condition
}

// IsEmpty reports whether the predicate constrains anything beyond owner.
func (p Predicate) IsEmpty() bool {
	return len(p.Conditions) == 0
}

// searchFields are the columns the free-text search ORs across.
var searchFields = []Field{FieldMerchant, FieldCategory, FieldSubcategory, FieldSummary, FieldRawText}

package bulkops

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_EmptyFilterSelectsEverything(t *testing.T) {
	t.Parallel()

	p, err := Compile(Filter{})
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestCompile_RejectsInvalidRanges(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		filter Filter
		field  string
	}{
		{
			name:   "DateStartAfterEnd",
			filter: Filter{DateRange: &DateRange{Start: &start, End: &end}},
			field:  "dateRange",
		},
		{
			name:   "NegativeAmountMin",
			filter: Filter{AmountRange: &AmountRange{Min: ptr(-1.0)}},
			field:  "amountRange.min",
		},
		{
			name:   "NegativeAmountMax",
			filter: Filter{AmountRange: &AmountRange{Max: ptr(-0.01)}},
			field:  "amountRange.max",
		},
		{
			name:   "AmountMinAboveMax",
			filter: Filter{AmountRange: &AmountRange{Min: ptr(50.0), Max: ptr(10.0)}},
			field:  "amountRange",
		},
		{
			name:   "ConfidenceMinBelowZero",
			filter: Filter{ConfidenceScore: &ScoreRange{Min: ptr(-0.1)}},
			field:  "confidenceScore.min",
		},
		{
			name:   "ConfidenceMaxAboveOne",
			filter: Filter{ConfidenceScore: &ScoreRange{Max: ptr(1.5)}},
			field:  "confidenceScore.max",
		},
		{
			name:   "ConfidenceMinAboveMax",
			filter: Filter{ConfidenceScore: &ScoreRange{Min: ptr(0.9), Max: ptr(0.2)}},
			field:  "confidenceScore",
		},
		{
			name:   "BlankCategoryEntry",
			filter: Filter{Categories: []string{"Groceries", "  "}},
			field:  "categories",
		},
		{
			name:   "BlankMerchantEntry",
			filter: Filter{Merchants: []string{""}},
			field:  "merchants",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := Compile(testCase.filter)
			require.Error(t, err)

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs.Errs, 1)
			assert.Equal(t, testCase.field, verrs.Errs[0].Field)
		})
	}
}

func TestCompile_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	_, err := Compile(Filter{
		AmountRange:     &AmountRange{Min: ptr(-5.0)},
		ConfidenceScore: &ScoreRange{Max: ptr(2.0)},
		Categories:      []string{" "},
	})
	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs.Errs, 3)
}

func TestCompile_FullFilterConditionOrder(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	f := Filter{
		DateRange:       &DateRange{Start: &start, End: &end},
		AmountRange:     &AmountRange{Min: ptr(10.0), Max: ptr(100.0)},
		Categories:      []string{"Groceries"},
		Merchants:       []string{"Walmart", "Target"},
		ConfidenceScore: &ScoreRange{Min: ptr(0.5)},
		HasSummary:      ptr(true),
		SearchQuery:     "  milk  ",
	}

	p, err := Compile(f)
	require.NoError(t, err)
	require.Len(t, p.Conditions, 9)

	assert.Equal(t, Condition{Op: OpGTE, Field: FieldPurchaseDate, Time: start}, p.Conditions[0])
	assert.Equal(t, Condition{Op: OpLTE, Field: FieldPurchaseDate, Time: end}, p.Conditions[1])
	assert.Equal(t, Condition{Op: OpGTE, Field: FieldTotal, Number: 10}, p.Conditions[2])
	assert.Equal(t, Condition{Op: OpLTE, Field: FieldTotal, Number: 100}, p.Conditions[3])
	assert.Equal(t, Condition{Op: OpIn, Field: FieldCategory, Strs: []string{"Groceries"}}, p.Conditions[4])
	assert.Equal(t, Condition{Op: OpIn, Field: FieldMerchant, Strs: []string{"Walmart", "Target"}}, p.Conditions[5])
	assert.Equal(t, Condition{Op: OpGTE, Field: FieldConfidence, Number: 0.5}, p.Conditions[6])
	assert.Equal(t, Condition{Op: OpNotNil, Field: FieldSummary}, p.Conditions[7])

	search := p.Conditions[8]
	assert.Equal(t, OpContainsFold, search.Op)
	assert.Equal(t, "milk", search.Text, "search query is trimmed")
	assert.Equal(t, searchFields, search.Fields)
}

func TestCompile_BlankSearchQueryDropsCondition(t *testing.T) {
	t.Parallel()

	p, err := Compile(Filter{SearchQuery: "   "})
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestCompile_HasSummaryFalseCompilesToIsNil(t *testing.T) {
	t.Parallel()

	p, err := Compile(Filter{HasSummary: ptr(false)})
	require.NoError(t, err)
	require.Len(t, p.Conditions, 1)
	assert.Equal(t, Condition{Op: OpIsNil, Field: FieldSummary}, p.Conditions[0])
}

func TestValidateUpdate(t *testing.T) {
	t.Parallel()

	long := func(n int) *string {
		b := make([]byte, n)
		for i := range b {
			b[i] = 'x'
		}
		return ptr(string(b))
	}

	testCases := []struct {
		name    string
		patch   Update
		wantErr bool
	}{
		{name: "EmptyPatch", patch: Update{}, wantErr: true},
		{name: "CategoryOnly", patch: Update{Category: ptr("Groceries")}},
		{name: "BlankMerchant", patch: Update{Merchant: ptr("  ")}, wantErr: true},
		{name: "MerchantTooLong", patch: Update{Merchant: long(257)}, wantErr: true},
		{name: "CategoryTooLong", patch: Update{Category: long(129)}, wantErr: true},
		{name: "SummaryAtLimit", patch: Update{Summary: long(2000)}},
		{name: "SummaryTooLong", patch: Update{Summary: long(2001)}, wantErr: true},
		{name: "AllFields", patch: Update{
			Category:    ptr("Dining"),
			Subcategory: ptr("Coffee"),
			Merchant:    ptr("Blue Bottle"),
			Summary:     ptr("two lattes"),
		}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := validateUpdate(testCase.patch)
			if testCase.wantErr {
				var verrs *ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.NotEmpty(t, verrs.Errs)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

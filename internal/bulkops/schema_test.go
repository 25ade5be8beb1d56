package bulkops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterJSON(t *testing.T) {
	t.Parallel()

	t.Run("FullDocument", func(t *testing.T) {
		t.Parallel()

		f, err := ParseFilterJSON([]byte(`{
			"dateRange": {"start": "2024-01-01T00:00:00Z", "end": "2024-06-30T00:00:00Z"},
			"amountRange": {"min": 10, "max": 100},
			"categories": ["Groceries"],
			"merchants": ["Walmart"],
			"confidenceScore": {"min": 0.5},
			"hasSummary": true,
			"searchQuery": "milk"
		}`))
		require.NoError(t, err)

		require.NotNil(t, f.DateRange)
		require.NotNil(t, f.DateRange.Start)
		assert.Equal(t, 2024, f.DateRange.Start.Year())
		require.NotNil(t, f.AmountRange)
		assert.Equal(t, 10.0, *f.AmountRange.Min)
		assert.Equal(t, []string{"Groceries"}, f.Categories)
		require.NotNil(t, f.HasSummary)
		assert.True(t, *f.HasSummary)
		assert.Equal(t, "milk", f.SearchQuery)
	})

	t.Run("EmptyObject", func(t *testing.T) {
		t.Parallel()

		f, err := ParseFilterJSON([]byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, Filter{}, f)
	})

	t.Run("RejectsMalformed", func(t *testing.T) {
		t.Parallel()

		testCases := []struct {
			name string
			doc  string
		}{
			{name: "UnknownProperty", doc: `{"dateRnage": {}}`},
			{name: "WrongAmountType", doc: `{"amountRange": {"min": "ten"}}`},
			{name: "WrongSearchType", doc: `{"searchQuery": 42}`},
			{name: "NonStringCategory", doc: `{"categories": [1]}`},
			{name: "NotJSON", doc: `{`},
		}
		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				_, err := ParseFilterJSON([]byte(testCase.doc))
				assert.Error(t, err)
			})
		}
	})
}

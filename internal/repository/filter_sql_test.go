package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyzruben/steward/internal/bulkops"
)

func TestSQLWhere_RendersConditionsWithPositionalArgs(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := bulkops.Predicate{Conditions: []bulkops.Condition{
		{Op: bulkops.OpGTE, Field: bulkops.FieldPurchaseDate, Time: start},
		{Op: bulkops.OpLTE, Field: bulkops.FieldTotal, Number: 100},
		{Op: bulkops.OpIn, Field: bulkops.FieldCategory, Strs: []string{"Groceries", "Gas"}},
		{Op: bulkops.OpNotNil, Field: bulkops.FieldSummary},
	}}

	where, args := sqlWhere(p, 2)

	assert.Equal(t,
		" AND purchase_date >= $2 AND total <= $3 AND category = ANY($4) AND summary IS NOT NULL",
		where)
	require.Len(t, args, 3)
	assert.Equal(t, start, args[0])
	assert.Equal(t, 100.0, args[1])
	assert.Equal(t, []string{"Groceries", "Gas"}, args[2])
}

func TestSQLWhere_SearchSharesOneArgAcrossFields(t *testing.T) {
	t.Parallel()

	p := bulkops.Predicate{Conditions: []bulkops.Condition{
		{Op: bulkops.OpContainsFold, Fields: []bulkops.Field{bulkops.FieldMerchant, bulkops.FieldSummary}, Text: "milk"},
	}}

	where, args := sqlWhere(p, 2)

	assert.Equal(t, " AND (merchant ILIKE $2 OR summary ILIKE $2)", where)
	require.Len(t, args, 1)
	assert.Equal(t, "%milk%", args[0])
}

func TestSQLWhere_SearchEscapesLikeMetacharacters(t *testing.T) {
	t.Parallel()

	// The text must match literally, matching what the ent builder
	// renders for ContainsFold on the other read path.
	testCases := []struct {
		name string
		text string
		want string
	}{
		{name: "Percent", text: "50%", want: `%50\%%`},
		{name: "Underscore", text: "a_b", want: `%a\_b%`},
		{name: "Backslash", text: `a\b`, want: `%a\\b%`},
		{name: "Mixed", text: `100%_off\`, want: `%100\%\_off\\%`},
		{name: "Plain", text: "walmart", want: "%walmart%"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			p := bulkops.Predicate{Conditions: []bulkops.Condition{
				{Op: bulkops.OpContainsFold, Fields: []bulkops.Field{bulkops.FieldMerchant}, Text: testCase.text},
			}}
			_, args := sqlWhere(p, 2)
			require.Len(t, args, 1)
			assert.Equal(t, testCase.want, args[0])
		})
	}
}

func TestSQLWhere_EmptyPredicate(t *testing.T) {
	t.Parallel()

	where, args := sqlWhere(bulkops.Predicate{}, 2)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

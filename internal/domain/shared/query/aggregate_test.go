package query

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parent struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func parentKey(p parent) string { return p.ID }

func TestMerge(t *testing.T) {
	parents := []parent{{ID: "1", Label: "one"}, {ID: "2", Label: "two"}}
	rows := []AggregationRow{{GroupKey: "1", Sums: map[string]decimal.Decimal{"amount": decimal.NewFromInt(50)}}}

	merged := Merge(parents, parentKey, []string{"amount"}, rows)

	require.Len(t, merged, 2)
	assert.Equal(t, "1", merged[0].Record.ID)
	assert.True(t, merged[0].Sum("amount").Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "2", merged[1].Record.ID)
	assert.True(t, merged[1].Sum("amount").IsZero())

	raw, err := json.Marshal(merged)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","label":"one","amount":50},{"id":"2","label":"two","amount":0}]`, string(raw))
}

func TestMerge_DropsUnmatchedRows(t *testing.T) {
	parents := []parent{{ID: "1"}}
	rows := []AggregationRow{
		{GroupKey: "ghost", Sums: map[string]decimal.Decimal{"amount": decimal.NewFromInt(9)}},
	}

	merged := Merge(parents, parentKey, []string{"amount"}, rows)

	require.Len(t, merged, 1)
	assert.True(t, merged[0].Sum("amount").IsZero())
}

func TestMerge_MultipleRowSets(t *testing.T) {
	parents := []parent{{ID: "a"}, {ID: "b"}}
	deposits := []AggregationRow{{GroupKey: "a", Sums: map[string]decimal.Decimal{"totalDeposit": decimal.NewFromInt(100)}}}
	expenses := []AggregationRow{
		{GroupKey: "a", Sums: map[string]decimal.Decimal{"totalExpense": decimal.NewFromInt(30)}},
		{GroupKey: "b", Sums: map[string]decimal.Decimal{"totalExpense": decimal.RequireFromString("12.5")}},
	}

	merged := Merge(parents, parentKey, []string{"totalDeposit", "totalExpense"}, deposits, expenses)

	assert.Equal(t, "100", merged[0].Sum("totalDeposit").String())
	assert.Equal(t, "30", merged[0].Sum("totalExpense").String())
	assert.True(t, merged[1].Sum("totalDeposit").IsZero())
	assert.Equal(t, "12.5", merged[1].Sum("totalExpense").String())
}

func TestMerge_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("order is preserved and every measure is present", prop.ForAll(
		func(n int, matched []int) bool {
			parents := make([]parent, n)
			for i := range parents {
				parents[i] = parent{ID: strconv.Itoa(i)}
			}
			var rows []AggregationRow
			for _, k := range matched {
				rows = append(rows, AggregationRow{
					GroupKey: strconv.Itoa(k),
					Sums:     map[string]decimal.Decimal{"amount": decimal.NewFromInt(int64(k) + 1)},
				})
			}

			merged := Merge(parents, parentKey, []string{"amount", "count"}, rows)
			if len(merged) != n {
				return false
			}
			for i, m := range merged {
				if m.Record.ID != strconv.Itoa(i) {
					return false
				}
				if _, ok := m.Sums["amount"]; !ok {
					return false
				}
				if !m.Sum("count").IsZero() {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 30),
		gen.SliceOf(gen.IntRange(0, 60)),
	))

	properties.TestingRun(t)
}

package query

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// AggregationRow holds grouped sums for one group key
type AggregationRow struct {
	GroupKey string
	Sums     map[string]decimal.Decimal
}

// Merged is a parent record augmented with measure sums
type Merged[T any] struct {
	Record T
	Sums   map[string]decimal.Decimal
}

// Sum returns the value of a measure, zero when absent
func (m Merged[T]) Sum(measure string) decimal.Decimal {
	return m.Sums[measure]
}

// MarshalJSON flattens the record and its sums into one object.
// Sums are encoded as JSON numbers and override record fields of the same name.
func (m Merged[T]) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(m.Record)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("merged record must encode as a JSON object: %w", err)
	}
	for name, v := range m.Sums {
		fields[name] = json.RawMessage(v.String())
	}
	return json.Marshal(fields)
}

// Merge left-joins grouped sums onto parents. Every measure is present on every
// output element, defaulting to zero. Output order follows parents; rows whose
// key matches no parent are dropped. Sums for the same key and measure coming
// from different row sets are added together.
func Merge[T any](parents []T, key func(T) string, measures []string, rowSets ...[]AggregationRow) []Merged[T] {
	byKey := make(map[string]map[string]decimal.Decimal)
	for _, rows := range rowSets {
		for _, row := range rows {
			sums, ok := byKey[row.GroupKey]
			if !ok {
				sums = make(map[string]decimal.Decimal, len(row.Sums))
				byKey[row.GroupKey] = sums
			}
			for name, v := range row.Sums {
				sums[name] = sums[name].Add(v)
			}
		}
	}

	out := make([]Merged[T], 0, len(parents))
	for _, parent := range parents {
		sums := make(map[string]decimal.Decimal, len(measures))
		matched := byKey[key(parent)]
		for _, name := range measures {
			if v, ok := matched[name]; ok {
				sums[name] = v
			} else {
				sums[name] = decimal.Zero
			}
		}
		out = append(out, Merged[T]{Record: parent, Sums: sums})
	}
	return out
}

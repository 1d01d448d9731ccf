// Package record turns tabular query results into ordered key/value records.
package record

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var ErrColumnMismatch = errors.New("row width does not match column count")

// Record is one result row keyed by column name. Keys keep the column order of the query,
// and so does its JSON encoding.
type Record struct {
	m *orderedmap.OrderedMap[string, any]
}

func New() Record {
	return Record{m: orderedmap.New[string, any]()}
}

func (r *Record) Set(key string, value any) {
	if r.m == nil {
		r.m = orderedmap.New[string, any]()
	}
	r.m.Set(key, value)
}

func (r Record) Get(key string) (any, bool) {
	if r.m == nil {
		return nil, false
	}
	return r.m.Get(key)
}

func (r Record) Len() int {
	if r.m == nil {
		return 0
	}
	return r.m.Len()
}

// Keys returns the column names in query order.
func (r Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	if r.m == nil {
		return keys
	}
	for pair := r.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (r Record) MarshalJSON() ([]byte, error) {
	if r.m == nil {
		return []byte("{}"), nil
	}
	return r.m.MarshalJSON()
}

func (r *Record) UnmarshalJSON(data []byte) error {
	r.m = orderedmap.New[string, any]()
	return r.m.UnmarshalJSON(data)
}

// MapRows zips columns with every row, keeping row order. Byte slices become strings;
// every other value is passed through as the driver returned it.
func MapRows(columns []string, rows [][]any) ([]Record, error) {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d: %w: got %d values for %d columns", i, ErrColumnMismatch, len(row), len(columns))
		}

		rec := New()
		for j, col := range columns {
			v := row[j]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			rec.Set(col, v)
		}
		records = append(records, rec)
	}

	return records, nil
}

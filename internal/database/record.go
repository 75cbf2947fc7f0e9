package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// Record is one result row: column names in query order and their values.
//
// Values are whatever the driver produced, with []byte turned into string.
// The typed accessors convert loosely so the same repository code reads
// SQLite and postgres rows.
type Record struct {
	columns []string
	values  []any
}

// NewRecord builds a Record. columns and values must have the same length.
func NewRecord(columns []string, values []any) Record {
	return Record{columns: columns, values: values}
}

// Columns returns the column names in query order.
func (r Record) Columns() []string {
	return r.columns
}

// Value returns the raw value of column, or nil if the column is absent.
func (r Record) Value(column string) any {
	for i, name := range r.columns {
		if name == column {
			return r.values[i]
		}
	}
	return nil
}

// At returns the raw value at position i.
func (r Record) At(i int) any {
	if i < 0 || i >= len(r.values) {
		return nil
	}
	return r.values[i]
}

func (r Record) Int64(column string) int64 {
	return cast.ToInt64(r.Value(column))
}

func (r Record) Int(column string) int {
	return cast.ToInt(r.Value(column))
}

func (r Record) String(column string) string {
	return cast.ToString(r.Value(column))
}

// NullString returns nil for SQL NULL.
func (r Record) NullString(column string) *string {
	v := r.Value(column)
	if v == nil {
		return nil
	}
	s := cast.ToString(v)
	return &s
}

// Time returns the zero time when the value is NULL or unparsable.
func (r Record) Time(column string) time.Time {
	t, err := cast.ToTimeE(r.Value(column))
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// scanRecords drains rows into Records. rows is always closed.
func scanRecords(rows *sql.Rows) ([]Record, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var records []Record
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}

		records = append(records, Record{columns: columns, values: values})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

package filter

import (
	"github.com/amishk599/jobinsight/internal/dataset"
)

// RequiredColumns keeps rows that have a value in every listed column.
type RequiredColumns struct {
	columns []string
}

// NewRequiredColumns returns a filter that rejects rows missing any of columns.
// An empty column list passes every row.
func NewRequiredColumns(columns ...string) *RequiredColumns {
	return &RequiredColumns{columns: columns}
}

// Match returns true if none of the required cells count as missing.
// A column absent from the file counts as missing in every row.
func (f *RequiredColumns) Match(rec dataset.Record) bool {
	for _, col := range f.columns {
		if dataset.IsMissing(rec[col]) {
			return false
		}
	}
	return true
}

// Columns returns the required column names.
func (f *RequiredColumns) Columns() []string {
	return f.columns
}

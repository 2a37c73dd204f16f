package enrich

import (
	"github.com/amishk599/jobinsight/internal/dataset"
)

// ColumnProfile counts missing cells for one column.
type ColumnProfile struct {
	Column  string
	Missing int
}

// Profile summarises missing values per column of the rows given.
type Profile struct {
	Rows    int
	Columns []ColumnProfile
}

// ProfileRecords counts missing cells in each of columns across rows.
func ProfileRecords(columns []string, rows []dataset.Record) Profile {
	p := Profile{Rows: len(rows), Columns: make([]ColumnProfile, len(columns))}
	for i, col := range columns {
		p.Columns[i].Column = col
		for _, rec := range rows {
			if dataset.IsMissing(rec[col]) {
				p.Columns[i].Missing++
			}
		}
	}
	return p
}

// Missing returns the missing count for col, or -1 if col was not profiled.
func (p Profile) Missing(col string) int {
	for _, c := range p.Columns {
		if c.Column == col {
			return c.Missing
		}
	}
	return -1
}

package filter

import (
	"testing"

	"github.com/amishk599/jobinsight/internal/dataset"
)

func TestRequiredColumns_Match(t *testing.T) {
	required := []string{dataset.ColSalaryMin, dataset.ColSalaryMax, dataset.ColCompany}

	tests := []struct {
		name      string
		columns   []string
		rec       dataset.Record
		wantMatch bool
	}{
		{
			name:      "all present",
			columns:   required,
			rec:       dataset.Record{"Salary Min": "50000", "Salary Max": "70000", "Company": "Acme"},
			wantMatch: true,
		},
		{
			name:      "sentinel salary is missing",
			columns:   required,
			rec:       dataset.Record{"Salary Min": "N/A", "Salary Max": "70000", "Company": "Acme"},
			wantMatch: false,
		},
		{
			name:      "empty company is missing",
			columns:   required,
			rec:       dataset.Record{"Salary Min": "1", "Salary Max": "2", "Company": ""},
			wantMatch: false,
		},
		{
			name:      "column absent from file",
			columns:   required,
			rec:       dataset.Record{"Salary Min": "1", "Salary Max": "2"},
			wantMatch: false,
		},
		{
			name:      "non-numeric salary still counts as present",
			columns:   required,
			rec:       dataset.Record{"Salary Min": "competitive", "Salary Max": "2", "Company": "Acme"},
			wantMatch: true,
		},
		{
			name:      "no required columns pass all",
			columns:   nil,
			rec:       dataset.Record{},
			wantMatch: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewRequiredColumns(tt.columns...)
			if got := f.Match(tt.rec); got != tt.wantMatch {
				t.Errorf("Match() = %v, want %v", got, tt.wantMatch)
			}
		})
	}
}

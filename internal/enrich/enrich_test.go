package enrich

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/amishk599/jobinsight/internal/dataset"
	"github.com/amishk599/jobinsight/internal/filter"
	"github.com/amishk599/jobinsight/internal/taxonomy"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func floatPtr(v float64) *float64 { return &v }

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		location  string
		wantCity  string
		wantState string
	}{
		{"Austin, Travis County", "Austin", "Travis"},
		{"Remote", "", "Remote"},
		{"  Seattle ,  King COUNTY ", "Seattle", "King"},
		{"Boston, Massachusetts", "Boston", "Massachusetts"},
		{"Springfield, Clark County, Ohio", "Springfield", "Clark County, Ohio"},
		{"Los Angeles, Countyline", "Los Angeles", "Countyline"},
		{"Travis County", "", "Travis County"},
		{"New York, ", "New York", ""},
		{"", "", ""},
		{"N/A", "", ""},
	}
	for _, tc := range tests {
		city, state := SplitLocation(tc.location)
		if city != tc.wantCity || state != tc.wantState {
			t.Errorf("SplitLocation(%q) = (%q, %q), want (%q, %q)",
				tc.location, city, state, tc.wantCity, tc.wantState)
		}
	}
}

func TestAverageSalary(t *testing.T) {
	tests := []struct {
		name     string
		min, max *float64
		want     *float64
	}{
		{"both bounds", floatPtr(50000), floatPtr(70000), floatPtr(60000)},
		{"only min", floatPtr(50000), nil, floatPtr(50000)},
		{"only max", nil, floatPtr(70000), floatPtr(70000)},
		{"neither", nil, nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AverageSalary(tc.min, tc.max)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("AverageSalary = %v, want %v", got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Errorf("AverageSalary = %v, want %v", *got, *tc.want)
			}
		})
	}
}

func TestPipeline_Run(t *testing.T) {
	table := &dataset.Table{
		Header: dataset.PostingColumns,
		Rows: []dataset.Record{
			{
				"Job Title": "Backend Engineer", "Company": "Acme",
				"Description": "Go, Kubernetes and PostgreSQL. JavaScript a plus.",
				"Location":    "Austin, Travis County",
				"Salary Min":  "50000", "Salary Max": "70000",
				"Date Posted": "2026-01-01", "URL": "https://example.com/1",
			},
			{
				// Dropped: sentinel salary.
				"Job Title": "Frontend", "Company": "Acme", "Location": "Remote",
				"Salary Min": "N/A", "Salary Max": "80000",
			},
			{
				// Dropped: missing company.
				"Job Title": "Data", "Company": "N/A", "Location": "Remote",
				"Salary Min": "1", "Salary Max": "2",
			},
			{
				// Kept: present but non-numeric salary coerces to missing.
				"Job Title": "SRE", "Company": "Beta", "Description": "N/A",
				"Location": "Remote", "Salary Min": "competitive", "Salary Max": "90000",
			},
		},
	}

	p := NewPipeline(
		filter.NewRequiredColumns(dataset.ColSalaryMin, dataset.ColSalaryMax, dataset.ColCompany),
		taxonomy.NewMatcher(taxonomy.Default()),
		discardLogger(),
	)
	res := p.Run(table)

	if res.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", res.Dropped)
	}
	if len(res.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(res.Jobs))
	}

	first := res.Jobs[0]
	if first.City != "Austin" || first.State != "Travis" {
		t.Errorf("location = %q/%q, want Austin/Travis", first.City, first.State)
	}
	if first.SalaryAvg == nil || *first.SalaryAvg != 60000 {
		t.Errorf("SalaryAvg = %v, want 60000", first.SalaryAvg)
	}
	wantSkills := []string{"go", "javascript", "kubernetes", "postgresql"}
	if !reflect.DeepEqual(first.Skills, wantSkills) {
		t.Errorf("Skills = %v, want %v", first.Skills, wantSkills)
	}

	second := res.Jobs[1]
	if second.SalaryMin != nil {
		t.Errorf("non-numeric SalaryMin should coerce to nil, got %v", *second.SalaryMin)
	}
	if second.SalaryAvg == nil || *second.SalaryAvg != 90000 {
		t.Errorf("SalaryAvg = %v, want 90000", second.SalaryAvg)
	}
	if second.City != "" || second.State != "Remote" {
		t.Errorf("location = %q/%q, want empty/Remote", second.City, second.State)
	}
	if second.Description != "" || second.Skills != nil {
		t.Errorf("missing description should give no skills, got %q %v", second.Description, second.Skills)
	}

	if got := res.Before.Missing(dataset.ColSalaryMin); got != 1 {
		t.Errorf("before: Salary Min missing = %d, want 1", got)
	}
	if got := res.Before.Missing(dataset.ColCompany); got != 1 {
		t.Errorf("before: Company missing = %d, want 1", got)
	}
	if res.Before.Rows != 4 || res.After.Rows != 2 {
		t.Errorf("profile rows = %d/%d, want 4/2", res.Before.Rows, res.After.Rows)
	}
	if got := res.After.Missing(dataset.ColSalaryMin); got != 1 {
		t.Errorf("after: Salary Min missing = %d, want 1", got)
	}
	if got := res.After.Missing(dataset.ColCity); got != 1 {
		t.Errorf("after: City missing = %d, want 1", got)
	}
	if got := res.After.Missing(dataset.ColSkills); got != 0 {
		t.Errorf("after: Skills missing = %d, want 0", got)
	}
	if got := res.After.Missing("does not exist"); got != -1 {
		t.Errorf("unknown column Missing = %d, want -1", got)
	}
}

func TestPipeline_EmptyTable(t *testing.T) {
	p := NewPipeline(filter.NewRequiredColumns(dataset.ColCompany), taxonomy.NewMatcher(taxonomy.Default()), discardLogger())
	res := p.Run(&dataset.Table{Header: dataset.PostingColumns})
	if len(res.Jobs) != 0 || res.Dropped != 0 {
		t.Errorf("unexpected result for empty table: %+v", res)
	}
}

package report

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/amishk599/jobinsight/internal/charts"
	"github.com/amishk599/jobinsight/internal/enrich"
	"github.com/amishk599/jobinsight/internal/fetcher"
)

func newTestReporter() (*LogReporter, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewLogReporter(logger), &buf
}

func TestLogReporter_Titles(t *testing.T) {
	r, buf := newTestReporter()
	failed := r.Titles([]fetcher.TitleResult{
		{Title: "Data Engineer", Postings: 20},
		{Title: "AI Engineer", Postings: 3, Err: errors.New("max retries reached")},
	})
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}

	out := buf.String()
	for _, want := range []string{"title fetch incomplete", `title="AI Engineer"`, "postings=23", "failed=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestLogReporter_Titles_empty(t *testing.T) {
	r, buf := newTestReporter()
	if failed := r.Titles(nil); failed != 0 {
		t.Errorf("failed = %d, want 0", failed)
	}
	if !strings.Contains(buf.String(), "titles=0") {
		t.Errorf("expected summary line, got:\n%s", buf.String())
	}
}

func TestLogReporter_Profile(t *testing.T) {
	r, buf := newTestReporter()
	r.Profile("before", enrich.Profile{
		Rows:    4,
		Columns: []enrich.ColumnProfile{{Column: "Salary Min", Missing: 2}},
	})
	out := buf.String()
	if !strings.Contains(out, "stage=before") || !strings.Contains(out, `"Salary Min"=2`) {
		t.Errorf("unexpected profile log:\n%s", out)
	}
}

func TestLogReporter_SavedAndSkipped(t *testing.T) {
	r, buf := newTestReporter()
	r.Saved("csv", "out.csv", 7)
	r.Skipped([]charts.Skipped{{ID: charts.IDStates, Reason: "no state values"}})

	out := buf.String()
	for _, want := range []string{"path=out.csv", "rows=7", "chart=states", `reason="no state values"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

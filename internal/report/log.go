package report

import (
	"log/slog"

	"github.com/amishk599/jobinsight/internal/charts"
	"github.com/amishk599/jobinsight/internal/enrich"
	"github.com/amishk599/jobinsight/internal/fetcher"
)

// LogReporter writes run outcomes to the given logger as structured messages.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter returns a reporter that logs via slog.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Titles logs the outcome of each fetched title and a run summary.
// Returns the number of titles that ended in an error.
func (r *LogReporter) Titles(results []fetcher.TitleResult) int {
	failed, total := 0, 0
	for _, res := range results {
		total += res.Postings
		if res.Err != nil {
			failed++
			r.logger.Warn("title fetch incomplete", "title", res.Title, "postings", res.Postings, "error", res.Err)
			continue
		}
		r.logger.Debug("title fetched", "title", res.Title, "postings", res.Postings)
	}
	r.logger.Info("fetch complete", "titles", len(results), "failed", failed, "postings", total)
	return failed
}

// Saved logs a written output file.
func (r *LogReporter) Saved(kind, path string, rows int) {
	r.logger.Info("data saved", "kind", kind, "path", path, "rows", rows)
}

// Profile logs the row count and each column's missing count for stage.
func (r *LogReporter) Profile(stage string, p enrich.Profile) {
	args := []any{"stage", stage, "rows", p.Rows}
	for _, c := range p.Columns {
		args = append(args, c.Column, c.Missing)
	}
	r.logger.Info("missing values", args...)
}

// Skipped logs charts that had no data to draw.
func (r *LogReporter) Skipped(skipped []charts.Skipped) {
	for _, s := range skipped {
		r.logger.Warn("chart skipped", "chart", s.ID, "reason", s.Reason)
	}
}

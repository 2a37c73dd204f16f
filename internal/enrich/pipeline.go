package enrich

import (
	"fmt"
	"log/slog"

	"github.com/amishk599/jobinsight/internal/dataset"
	"github.com/amishk599/jobinsight/internal/model"
)

// RowFilter decides whether a raw row is kept.
type RowFilter interface {
	Match(rec dataset.Record) bool
}

// SkillExtractor tags free text with taxonomy terms.
type SkillExtractor interface {
	Extract(text string) []string
}

// Result is the outcome of one enrichment pass.
type Result struct {
	Jobs    []model.EnrichedJob
	Before  Profile // missing values in the loaded file
	After   Profile // missing values in the enriched rows
	Dropped int
}

// Pipeline cleans a loaded table and derives location, salary and skill columns.
type Pipeline struct {
	filter RowFilter
	skills SkillExtractor
	logger *slog.Logger
}

// NewPipeline wires a pipeline. skills is typically a *taxonomy.Matcher.
func NewPipeline(filter RowFilter, skills SkillExtractor, logger *slog.Logger) *Pipeline {
	return &Pipeline{filter: filter, skills: skills, logger: logger}
}

// Run applies the cleaning and enrichment steps to every row of t, in order.
func (p *Pipeline) Run(t *dataset.Table) Result {
	res := Result{Before: ProfileRecords(t.Header, t.Rows)}

	kept := make([]dataset.Record, 0, len(t.Rows))
	for _, rec := range t.Rows {
		if p.filter.Match(rec) {
			kept = append(kept, rec)
		}
	}
	res.Dropped = len(t.Rows) - len(kept)
	p.logger.Debug("dropped incomplete rows", "dropped", res.Dropped, "kept", len(kept))

	res.Jobs = make([]model.EnrichedJob, 0, len(kept))
	for _, rec := range kept {
		res.Jobs = append(res.Jobs, p.enrich(dataset.PostingFromRecord(rec)))
	}

	res.After = profileJobs(res.Jobs)
	return res
}

// enrich derives the extra columns for a single posting.
func (p *Pipeline) enrich(posting model.JobPosting) model.EnrichedJob {
	city, state := SplitLocation(posting.Location)
	return model.EnrichedJob{
		JobPosting: posting,
		City:       city,
		State:      state,
		SalaryAvg:  AverageSalary(posting.SalaryMin, posting.SalaryMax),
		Skills:     p.skills.Extract(posting.Description),
	}
}

// profileJobs profiles enriched rows the same way the loaded file was profiled.
func profileJobs(jobs []model.EnrichedJob) Profile {
	rows := make([]dataset.Record, len(jobs))
	for i, j := range jobs {
		rows[i] = dataset.Record{
			dataset.ColTitle:       j.Title,
			dataset.ColCompany:     j.Company,
			dataset.ColDescription: j.Description,
			dataset.ColLocation:    j.Location,
			dataset.ColSalaryMin:   optional(j.SalaryMin),
			dataset.ColSalaryMax:   optional(j.SalaryMax),
			dataset.ColPosted:      j.Posted,
			dataset.ColURL:         j.URL,
			dataset.ColCity:        j.City,
			dataset.ColState:       j.State,
			dataset.ColSalaryAvg:   optional(j.SalaryAvg),
			dataset.ColSkills:      fmt.Sprint(j.Skills), // a list cell is never missing
		}
	}
	return ProfileRecords(dataset.EnrichedColumns, rows)
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}
	return dataset.FormatFloat(*v)
}

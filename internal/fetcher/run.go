package fetcher

import (
	"context"
	"errors"

	"github.com/amishk599/jobinsight/internal/model"
)

// TitleResult is the outcome of fetching one title.
type TitleResult struct {
	Title    string
	Postings int
	Err      error
}

// FetchAll runs FetchTitle for each title in order and concatenates the
// results. A title that fails keeps whatever it collected and the run moves
// on; only cancellation of ctx stops the loop early. The per-title outcomes
// are returned alongside the postings.
func (p *Paginator) FetchAll(ctx context.Context, titles []string, maxPages int) ([]model.JobPosting, []TitleResult) {
	var all []model.JobPosting
	var results []TitleResult

	for _, title := range titles {
		if ctx.Err() != nil {
			break
		}

		p.logger.Info("fetching jobs", "title", title)
		postings, err := p.FetchTitle(ctx, title, maxPages)
		all = append(all, postings...)
		results = append(results, TitleResult{Title: title, Postings: len(postings), Err: err})

		if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			break
		}
	}

	return all, results
}

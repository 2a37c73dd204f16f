package fetcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amishk599/jobinsight/internal/model"
	"github.com/amishk599/jobinsight/internal/pacing"
	"github.com/amishk599/jobinsight/internal/retry"
)

// ErrRetriesExhausted marks a title whose fetch was abandoned after too many failures.
var ErrRetriesExhausted = retry.ErrExhausted

// Options tunes the pagination loop.
type Options struct {
	MaxRetries int          // failures absorbed per title before giving up
	PageDelay  pacing.Delay // pause after every successful page
	RetryDelay pacing.Delay // pause after every failed page
	// RetrySamePage re-attempts the failed page index instead of moving on
	// to the next one.
	RetrySamePage bool
	Sleep         pacing.SleepFunc // defaults to pacing.Sleep
}

// Paginator walks the result pages of a PageSource for one title at a time.
type Paginator struct {
	source model.PageSource
	opts   Options
	logger *slog.Logger
}

// NewPaginator creates a paginator over source.
func NewPaginator(source model.PageSource, opts Options, logger *slog.Logger) *Paginator {
	if opts.Sleep == nil {
		opts.Sleep = pacing.Sleep
	}
	if opts.PageDelay == nil {
		opts.PageDelay = pacing.FixedDelay(0)
	}
	if opts.RetryDelay == nil {
		opts.RetryDelay = pacing.FixedDelay(0)
	}
	return &Paginator{
		source: source,
		opts:   opts,
		logger: logger,
	}
}

// FetchTitle collects postings for title from page 1 up to maxPages. It stops
// early on an empty page. When the retry budget runs out it returns the
// postings gathered so far along with an error wrapping ErrRetriesExhausted.
func (p *Paginator) FetchTitle(ctx context.Context, title string, maxPages int) ([]model.JobPosting, error) {
	var all []model.JobPosting
	budget := retry.NewBudget(p.opts.MaxRetries, p.opts.RetryDelay, p.opts.Sleep, p.logger)

	for page := 1; page <= maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return all, err
		}

		postings, err := p.source.FetchPage(ctx, title, page)
		if err != nil {
			if ferr := budget.Fail(ctx, title, err); ferr != nil {
				if errors.Is(ferr, retry.ErrExhausted) {
					p.logger.Error("giving up on title", "title", title, "page", page, "error", err)
				}
				return all, ferr
			}
			if p.opts.RetrySamePage {
				page--
			}
			continue
		}

		if len(postings) == 0 {
			p.logger.Debug("no more results", "title", title, "page", page)
			break
		}
		all = append(all, postings...)
		p.logger.Debug("fetched page", "title", title, "page", page, "results", len(postings))

		if err := p.opts.Sleep(ctx, p.opts.PageDelay.Next()); err != nil {
			return all, fmt.Errorf("page delay for %s: %w", title, err)
		}
	}

	return all, nil
}

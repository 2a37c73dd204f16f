package model

import "context"

// Sentinel is written in place of any field the search API did not return.
const Sentinel = "N/A"

// JobPosting is one search result as returned by the job-search API.
type JobPosting struct {
	Title       string   // job title
	Company     string   // company display name
	Description string   // plain-text description snippet
	Location    string   // "City, State" display name
	SalaryMin   *float64 // nil when the API omits it
	SalaryMax   *float64 // nil when the API omits it
	Posted      string   // raw "created" timestamp
	URL         string   // redirect URL to the listing
}

// EnrichedJob is a cleaned JobPosting with derived columns.
type EnrichedJob struct {
	JobPosting
	City      string   // empty when the location had no comma
	State     string   // empty when the location was missing
	SalaryAvg *float64 // mean of the available salary bounds
	Skills    []string // sorted, de-duplicated taxonomy terms
}

// PageSource fetches a single result page for a search term.
// An empty slice with a nil error means there are no more results.
type PageSource interface {
	FetchPage(ctx context.Context, title string, page int) ([]JobPosting, error)
}

// EnrichedStore persists one run's enriched rows.
type EnrichedStore interface {
	SaveEnriched(jobs []EnrichedJob) error
}

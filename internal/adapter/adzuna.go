package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amishk599/jobinsight/internal/model"
)

// DefaultAdzunaBaseURL is the US search endpoint; the page number is appended.
const DefaultAdzunaBaseURL = "https://api.adzuna.com/v1/api/jobs/us/search/"

// AdzunaConfig holds the static credentials and query settings for the search API.
type AdzunaConfig struct {
	BaseURL        string
	AppID          string
	AppKey         string
	ResultsPerPage int
	FullTime       bool
}

// adzunaResponse is the top-level search response. Results are kept raw so
// each record can be read field by field.
type adzunaResponse struct {
	Results []json.RawMessage `json:"results"`
}

// AdzunaAdapter fetches result pages from the Adzuna job-search API.
type AdzunaAdapter struct {
	cfg    AdzunaConfig
	client *http.Client
}

// NewAdzunaAdapter creates a page source for the Adzuna API.
func NewAdzunaAdapter(cfg AdzunaConfig, client *http.Client) *AdzunaAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultAdzunaBaseURL
	}
	if cfg.ResultsPerPage <= 0 {
		cfg.ResultsPerPage = 10
	}
	return &AdzunaAdapter{cfg: cfg, client: client}
}

// pageURL builds the search URL for a title and 1-based page index.
func (a *AdzunaAdapter) pageURL(title string, page int) string {
	q := url.Values{}
	q.Set("app_id", a.cfg.AppID)
	q.Set("app_key", a.cfg.AppKey)
	q.Set("results_per_page", strconv.Itoa(a.cfg.ResultsPerPage))
	q.Set("title_only", title)
	if a.cfg.FullTime {
		q.Set("full_time", "1")
	}
	base := strings.TrimSuffix(a.cfg.BaseURL, "/")
	return fmt.Sprintf("%s/%d?%s", base, page, q.Encode())
}

// FetchPage retrieves one page of results for title. A response without a
// results array, or with an empty one, yields an empty slice and nil error.
func (a *AdzunaAdapter) FetchPage(ctx context.Context, title string, page int) ([]model.JobPosting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.pageURL(title, page), nil)
	if err != nil {
		return nil, fmt.Errorf("adzuna fetch for %q page %d: %w", title, page, err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna fetch for %q page %d: %w", title, page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			Body:       readErrorBody(resp.Body),
		}
	}

	var azResp adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&azResp); err != nil {
		return nil, fmt.Errorf("adzuna fetch for %q page %d: decode: %w", title, page, err)
	}

	postings := make([]model.JobPosting, 0, len(azResp.Results))
	for _, raw := range azResp.Results {
		postings = append(postings, parsePosting(raw))
	}
	return postings, nil
}

// parsePosting reads the fields of one result record. Anything missing or of
// an unexpected type falls back to the sentinel rather than failing the page.
func parsePosting(raw json.RawMessage) model.JobPosting {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		fields = nil
	}

	p := model.JobPosting{
		Title:     textField(fields, "title"),
		Company:   nestedStringField(fields, "company", "display_name"),
		Location:  nestedStringField(fields, "location", "display_name"),
		SalaryMin: numberField(fields, "salary_min"),
		SalaryMax: numberField(fields, "salary_max"),
		Posted:    stringField(fields, "created"),
		URL:       stringField(fields, "redirect_url"),
	}
	p.Description = textField(fields, "description")
	return p
}

// textField reads a string that may carry HTML markup and returns it as plain text.
func textField(fields map[string]json.RawMessage, key string) string {
	s := stringField(fields, key)
	if s == model.Sentinel {
		return s
	}
	return extractText(s)
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return model.Sentinel
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return model.Sentinel
	}
	return s
}

func nestedStringField(fields map[string]json.RawMessage, key, inner string) string {
	raw, ok := fields[key]
	if !ok {
		return model.Sentinel
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return model.Sentinel
	}
	return stringField(obj, inner)
}

// numberField accepts a JSON number or a numeric string.
func numberField(fields map[string]json.RawMessage, key string) *float64 {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}

package charts

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/amishk599/jobinsight/internal/model"
)

// Kind selects how a chart is drawn.
type Kind int

const (
	KindBar Kind = iota
	KindHistogram
	KindWordCloud
)

// Chart IDs, in render order.
const (
	IDStates    = "states"
	IDSalary    = "salary"
	IDCompanies = "companies"
	IDSkills    = "skills"
	IDWordCloud = "wordcloud"
)

// Point is one bar, bin or word.
type Point struct {
	Label string
	Value float64
}

// Chart is renderer-independent chart data.
type Chart struct {
	ID     string
	Kind   Kind
	Title  string
	XLabel string
	YLabel string
	Points []Point
}

// Skipped records a chart that had no data to draw.
type Skipped struct {
	ID     string
	Reason string
}

// Options controls chart sizes.
type Options struct {
	TopN          int             // bars in each top-N chart
	HistogramBins int             // bins in the salary histogram
	CloudWords    int             // words kept in the word cloud
	Stopwords     map[string]bool // words dropped from the word cloud, lowercase
}

// DefaultOptions returns top-20 bar charts, a 50-bin histogram and a
// 200-word cloud using the English stop word list plus extra.
func DefaultOptions(extra ...string) Options {
	return Options{
		TopN:          20,
		HistogramBins: 50,
		CloudWords:    200,
		Stopwords:     Stopwords(extra...),
	}
}

// Build derives every chart from jobs. A chart whose source column is entirely
// empty is reported in the skipped list instead of failing the others.
func Build(jobs []model.EnrichedJob, opts Options) ([]Chart, []Skipped) {
	builders := []func([]model.EnrichedJob, Options) (Chart, string){
		statesChart,
		salaryChart,
		companiesChart,
		skillsChart,
		wordCloudChart,
	}

	var charts []Chart
	var skipped []Skipped
	for _, build := range builders {
		c, reason := build(jobs, opts)
		if reason != "" {
			skipped = append(skipped, Skipped{ID: c.ID, Reason: reason})
			continue
		}
		charts = append(charts, c)
	}
	return charts, skipped
}

func statesChart(jobs []model.EnrichedJob, opts Options) (Chart, string) {
	c := Chart{
		ID:     IDStates,
		Kind:   KindBar,
		Title:  fmt.Sprintf("Top %d States by Job Postings", opts.TopN),
		XLabel: "State",
		YLabel: "Number of Job Postings",
	}
	values := make([]string, 0, len(jobs))
	for _, j := range jobs {
		values = append(values, j.State)
	}
	c.Points = topCounts(values, opts.TopN)
	if len(c.Points) == 0 {
		return c, "no state values"
	}
	return c, ""
}

func companiesChart(jobs []model.EnrichedJob, opts Options) (Chart, string) {
	c := Chart{
		ID:     IDCompanies,
		Kind:   KindBar,
		Title:  fmt.Sprintf("Top %d Companies by Job Postings", opts.TopN),
		XLabel: "Company",
		YLabel: "Number of Job Postings",
	}
	values := make([]string, 0, len(jobs))
	for _, j := range jobs {
		values = append(values, j.Company)
	}
	c.Points = topCounts(values, opts.TopN)
	if len(c.Points) == 0 {
		return c, "no company values"
	}
	return c, ""
}

func skillsChart(jobs []model.EnrichedJob, opts Options) (Chart, string) {
	c := Chart{
		ID:     IDSkills,
		Kind:   KindBar,
		Title:  fmt.Sprintf("Top %d Most Common Skills", opts.TopN),
		XLabel: "Skills",
		YLabel: "Frequency",
	}
	var values []string
	for _, j := range jobs {
		values = append(values, j.Skills...)
	}
	c.Points = topCounts(values, opts.TopN)
	if len(c.Points) == 0 {
		return c, "no skills matched"
	}
	return c, ""
}

func salaryChart(jobs []model.EnrichedJob, opts Options) (Chart, string) {
	c := Chart{
		ID:     IDSalary,
		Kind:   KindHistogram,
		Title:  "Salary Distribution",
		XLabel: "Average Salary",
		YLabel: "Frequency",
	}
	var values []float64
	for _, j := range jobs {
		if j.SalaryAvg != nil && !math.IsNaN(*j.SalaryAvg) {
			values = append(values, *j.SalaryAvg)
		}
	}
	if len(values) == 0 {
		return c, "no salary values"
	}
	c.Points = histogram(values, opts.HistogramBins)
	return c, ""
}

// topCounts counts non-empty values and returns the n most frequent, ties
// broken alphabetically.
func topCounts(values []string, n int) []Point {
	counts := make(map[string]int)
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			counts[v]++
		}
	}
	return topN(counts, n)
}

func topN(counts map[string]int, n int) []Point {
	points := make([]Point, 0, len(counts))
	for label, count := range counts {
		points = append(points, Point{Label: label, Value: float64(count)})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Label < points[j].Label
	})
	if n > 0 && len(points) > n {
		points = points[:n]
	}
	return points
}

// histogram splits values into equal-width bins over their range. The last
// bin is closed on the right. A zero-width range is widened by 0.5 each way.
func histogram(values []float64, bins int) []Point {
	if bins <= 0 {
		bins = 1
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}

	points := make([]Point, bins)
	for i, n := range counts {
		start := lo + float64(i)*width
		points[i] = Point{
			Label: fmt.Sprintf("%s-%s", shortMoney(start), shortMoney(start+width)),
			Value: float64(n),
		}
	}
	return points
}

// shortMoney formats an amount compactly, e.g. 125000 as "125k".
func shortMoney(v float64) string {
	if math.Abs(v) >= 1000 {
		return fmt.Sprintf("%.0fk", v/1000)
	}
	return fmt.Sprintf("%.0f", v)
}

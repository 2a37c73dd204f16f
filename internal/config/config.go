package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amishk599/jobinsight/internal/taxonomy"
)

// Config is the root configuration for jobinsight.
type Config struct {
	API      APIConfig
	Fetch    FetchConfig
	Enrich   EnrichConfig
	Taxonomy taxonomy.Taxonomy
}

// APIConfig describes the Adzuna search endpoint.
type APIConfig struct {
	BaseURL        string
	AppID          string // falls back to ADZUNA_APP_ID
	AppKey         string // falls back to ADZUNA_APP_KEY
	ResultsPerPage int
	FullTime       bool
	Timeout        time.Duration // per-request timeout
}

// DelayRange is a closed interval sampled uniformly for each pause.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// FetchConfig controls the paginated fetch loop.
type FetchConfig struct {
	Titles        []string
	MaxPages      int
	MaxRetries    int
	PageDelay     DelayRange
	RetryDelay    DelayRange
	RetrySamePage bool // re-attempt the failed page instead of moving on
	Output        string
}

// EnrichConfig controls the cleaning stage and its charts.
type EnrichConfig struct {
	Input          string
	Output         string
	Database       string // SQLite mirror; empty disables it
	HTML           string // chart report; empty disables it
	TopN           int
	HistogramBins  int
	WordCloudWords int
	ExtraStopwords []string
}

const DefaultBaseURL = "https://api.adzuna.com/v1/api/jobs/us/search/"

// DefaultTitles are the job titles searched when none are configured.
var DefaultTitles = []string{
	// Software Development
	"Software Engineer",
	"Full Stack Developer",
	"Front End Developer",
	"Back End Developer",
	"Mobile App Developer",

	// Data Science & Analytics
	"Data Scientist",
	"Data Engineer",
	"Machine Learning Engineer",
	"AI Engineer",
	"Business Intelligence Analyst",

	// Product & Design
	"Product Manager",
	"Business Analyst",
	"Product Analyst",
	"UX/UI Designer",
	"System Analyst",

	// IT & Systems
	"DevOps Engineer",
	"Cloud Engineer",
	"Site Reliability Engineer",
	"Security Engineer",
	"Network Engineer",

	// Other Tech Roles
	"Embedded Systems Engineer",
	"Quality Assurance Engineer",
	"Database Administrator",
	"Solutions Architect",
	"Blockchain Developer",
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			AppID:          os.Getenv("ADZUNA_APP_ID"),
			AppKey:         os.Getenv("ADZUNA_APP_KEY"),
			ResultsPerPage: 10,
			FullTime:       true,
			Timeout:        30 * time.Second,
		},
		Fetch: FetchConfig{
			Titles:     append([]string(nil), DefaultTitles...),
			MaxPages:   50,
			MaxRetries: 3,
			PageDelay:  DelayRange{Min: 2 * time.Second, Max: 10 * time.Second},
			RetryDelay: DelayRange{Min: 5 * time.Second, Max: 15 * time.Second},
			Output:     "adzuna_jobs.csv",
		},
		Enrich: EnrichConfig{
			Input:          "Engineering_Jobs_Insight_Dataset.csv",
			Output:         "adzuna_jobs_cleaned.csv",
			TopN:           20,
			HistogramBins:  50,
			WordCloudWords: 200,
			ExtraStopwords: []string{"will", "work", "company", "team", "requirements", "skills", "experience"},
		},
		Taxonomy: taxonomy.Default(),
	}
}

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
// Pointer fields distinguish "unset" from an explicit zero or false.
type rawConfig struct {
	API      rawAPIConfig        `yaml:"api"`
	Fetch    rawFetchConfig      `yaml:"fetch"`
	Enrich   rawEnrichConfig     `yaml:"enrich"`
	Taxonomy map[string][]string `yaml:"taxonomy"`
}

type rawAPIConfig struct {
	BaseURL        string `yaml:"base_url"`
	AppID          string `yaml:"app_id"`
	AppKey         string `yaml:"app_key"`
	ResultsPerPage int    `yaml:"results_per_page"`
	FullTime       *bool  `yaml:"full_time"`
	Timeout        string `yaml:"timeout"`
}

type rawDelayRange struct {
	Min string `yaml:"min"`
	Max string `yaml:"max"`
}

type rawFetchConfig struct {
	Titles        []string      `yaml:"titles"`
	MaxPages      *int          `yaml:"max_pages"`
	MaxRetries    *int          `yaml:"max_retries"`
	PageDelay     rawDelayRange `yaml:"page_delay"`
	RetryDelay    rawDelayRange `yaml:"retry_delay"`
	RetrySamePage bool          `yaml:"retry_same_page"`
	Output        string        `yaml:"output"`
}

type rawEnrichConfig struct {
	Input          string   `yaml:"input"`
	Output         string   `yaml:"output"`
	Database       string   `yaml:"database"`
	HTML           string   `yaml:"html"`
	TopN           *int     `yaml:"top_n"`
	HistogramBins  *int     `yaml:"histogram_bins"`
	WordCloudWords *int     `yaml:"word_cloud_words"`
	ExtraStopwords []string `yaml:"extra_stopwords"`
}

// Load reads and parses the YAML config file at path, applies it over the
// defaults, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if err := raw.apply(cfg); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (raw rawConfig) apply(cfg *Config) error {
	api := raw.API
	if api.BaseURL != "" {
		cfg.API.BaseURL = api.BaseURL
	}
	if api.AppID != "" {
		cfg.API.AppID = api.AppID
	}
	if api.AppKey != "" {
		cfg.API.AppKey = api.AppKey
	}
	if api.ResultsPerPage != 0 {
		cfg.API.ResultsPerPage = api.ResultsPerPage
	}
	if api.FullTime != nil {
		cfg.API.FullTime = *api.FullTime
	}
	if err := parseDuration("api.timeout", api.Timeout, &cfg.API.Timeout); err != nil {
		return err
	}

	fetch := raw.Fetch
	if len(fetch.Titles) > 0 {
		cfg.Fetch.Titles = fetch.Titles
	}
	if fetch.MaxPages != nil {
		cfg.Fetch.MaxPages = *fetch.MaxPages
	}
	if fetch.MaxRetries != nil {
		cfg.Fetch.MaxRetries = *fetch.MaxRetries
	}
	if err := fetch.PageDelay.apply("fetch.page_delay", &cfg.Fetch.PageDelay); err != nil {
		return err
	}
	if err := fetch.RetryDelay.apply("fetch.retry_delay", &cfg.Fetch.RetryDelay); err != nil {
		return err
	}
	cfg.Fetch.RetrySamePage = fetch.RetrySamePage
	if fetch.Output != "" {
		cfg.Fetch.Output = fetch.Output
	}

	enrich := raw.Enrich
	if enrich.Input != "" {
		cfg.Enrich.Input = enrich.Input
	}
	if enrich.Output != "" {
		cfg.Enrich.Output = enrich.Output
	}
	cfg.Enrich.Database = enrich.Database
	cfg.Enrich.HTML = enrich.HTML
	if enrich.TopN != nil {
		cfg.Enrich.TopN = *enrich.TopN
	}
	if enrich.HistogramBins != nil {
		cfg.Enrich.HistogramBins = *enrich.HistogramBins
	}
	if enrich.WordCloudWords != nil {
		cfg.Enrich.WordCloudWords = *enrich.WordCloudWords
	}
	if enrich.ExtraStopwords != nil {
		cfg.Enrich.ExtraStopwords = enrich.ExtraStopwords
	}

	if len(raw.Taxonomy) > 0 {
		cfg.Taxonomy = taxonomy.Taxonomy(raw.Taxonomy)
	}
	return nil
}

func (r rawDelayRange) apply(field string, d *DelayRange) error {
	if err := parseDuration(field+".min", r.Min, &d.Min); err != nil {
		return err
	}
	return parseDuration(field+".max", r.Max, &d.Max)
}

func parseDuration(field, s string, dst *time.Duration) error {
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse %s %q: %w", field, s, err)
	}
	*dst = d
	return nil
}

func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if cfg.API.ResultsPerPage <= 0 {
		return fmt.Errorf("api.results_per_page must be positive, got %d", cfg.API.ResultsPerPage)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %v", cfg.API.Timeout)
	}

	if len(cfg.Fetch.Titles) == 0 {
		return errors.New("fetch.titles must not be empty")
	}
	if cfg.Fetch.MaxPages <= 0 {
		return fmt.Errorf("fetch.max_pages must be positive, got %d", cfg.Fetch.MaxPages)
	}
	if cfg.Fetch.MaxRetries < 0 {
		return fmt.Errorf("fetch.max_retries must not be negative, got %d", cfg.Fetch.MaxRetries)
	}
	if err := validateRange("fetch.page_delay", cfg.Fetch.PageDelay); err != nil {
		return err
	}
	if err := validateRange("fetch.retry_delay", cfg.Fetch.RetryDelay); err != nil {
		return err
	}
	if cfg.Fetch.Output == "" {
		return errors.New("fetch.output is required")
	}

	if cfg.Enrich.Input == "" || cfg.Enrich.Output == "" {
		return errors.New("enrich.input and enrich.output are required")
	}
	if cfg.Enrich.TopN <= 0 {
		return fmt.Errorf("enrich.top_n must be positive, got %d", cfg.Enrich.TopN)
	}
	if cfg.Enrich.HistogramBins <= 0 {
		return fmt.Errorf("enrich.histogram_bins must be positive, got %d", cfg.Enrich.HistogramBins)
	}
	if cfg.Enrich.WordCloudWords <= 0 {
		return fmt.Errorf("enrich.word_cloud_words must be positive, got %d", cfg.Enrich.WordCloudWords)
	}

	if len(cfg.Taxonomy.Terms()) == 0 {
		return errors.New("taxonomy must contain at least one term")
	}

	return nil
}

func validateRange(field string, d DelayRange) error {
	if d.Min < 0 {
		return fmt.Errorf("%s.min must not be negative, got %v", field, d.Min)
	}
	if d.Min > d.Max {
		return fmt.Errorf("%s.min (%v) must not exceed max (%v)", field, d.Min, d.Max)
	}
	return nil
}

// RequireCredentials reports whether the key pair needed to call the API is set.
func (a APIConfig) RequireCredentials() error {
	if a.AppID == "" {
		return errors.New("api.app_id is required (or set ADZUNA_APP_ID)")
	}
	if a.AppKey == "" {
		return errors.New("api.app_key is required (or set ADZUNA_APP_KEY)")
	}
	return nil
}

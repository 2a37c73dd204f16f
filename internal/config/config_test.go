package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobinsight.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := validate(cfg); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.ResultsPerPage != 10 || !cfg.API.FullTime {
		t.Errorf("API = %+v", cfg.API)
	}
	if len(cfg.Fetch.Titles) != 25 {
		t.Errorf("len(Titles) = %d, want 25", len(cfg.Fetch.Titles))
	}
	if cfg.Fetch.MaxPages != 50 || cfg.Fetch.MaxRetries != 3 {
		t.Errorf("Fetch = %+v", cfg.Fetch)
	}
	if cfg.Fetch.PageDelay != (DelayRange{Min: 2 * time.Second, Max: 10 * time.Second}) {
		t.Errorf("PageDelay = %+v", cfg.Fetch.PageDelay)
	}
	if cfg.Fetch.RetryDelay != (DelayRange{Min: 5 * time.Second, Max: 15 * time.Second}) {
		t.Errorf("RetryDelay = %+v", cfg.Fetch.RetryDelay)
	}
	if cfg.Fetch.Output != "adzuna_jobs.csv" || cfg.Enrich.Output != "adzuna_jobs_cleaned.csv" {
		t.Errorf("outputs = %q, %q", cfg.Fetch.Output, cfg.Enrich.Output)
	}
	if len(cfg.Taxonomy.Categories()) != 12 {
		t.Errorf("taxonomy categories = %d, want 12", len(cfg.Taxonomy.Categories()))
	}
}

func TestDefault_TitlesAreCopied(t *testing.T) {
	cfg := Default()
	cfg.Fetch.Titles[0] = "changed"
	if DefaultTitles[0] != "Software Engineer" {
		t.Error("Default must not share the DefaultTitles backing array")
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
api:
  app_id: "abc"
  app_key: "secret"
  results_per_page: 25
  full_time: false
  timeout: 10s
fetch:
  titles:
    - Go Developer
  max_pages: 2
  max_retries: 0
  page_delay:
    min: 1s
    max: 3s
  retry_same_page: true
enrich:
  database: jobs.db
  top_n: 10
  extra_stopwords: [role]
taxonomy:
  languages: [go, rust]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.AppID != "abc" || cfg.API.AppKey != "secret" {
		t.Errorf("credentials = %q/%q", cfg.API.AppID, cfg.API.AppKey)
	}
	if cfg.API.ResultsPerPage != 25 || cfg.API.FullTime || cfg.API.Timeout != 10*time.Second {
		t.Errorf("API = %+v", cfg.API)
	}
	if len(cfg.Fetch.Titles) != 1 || cfg.Fetch.Titles[0] != "Go Developer" {
		t.Errorf("Titles = %v", cfg.Fetch.Titles)
	}
	if cfg.Fetch.MaxPages != 2 || cfg.Fetch.MaxRetries != 0 || !cfg.Fetch.RetrySamePage {
		t.Errorf("Fetch = %+v", cfg.Fetch)
	}
	if cfg.Fetch.PageDelay != (DelayRange{Min: time.Second, Max: 3 * time.Second}) {
		t.Errorf("PageDelay = %+v", cfg.Fetch.PageDelay)
	}
	// Unset sections keep their defaults.
	if cfg.Fetch.RetryDelay != (DelayRange{Min: 5 * time.Second, Max: 15 * time.Second}) {
		t.Errorf("RetryDelay = %+v", cfg.Fetch.RetryDelay)
	}
	if cfg.Enrich.Database != "jobs.db" || cfg.Enrich.TopN != 10 || cfg.Enrich.HistogramBins != 50 {
		t.Errorf("Enrich = %+v", cfg.Enrich)
	}
	if len(cfg.Enrich.ExtraStopwords) != 1 || cfg.Enrich.ExtraStopwords[0] != "role" {
		t.Errorf("ExtraStopwords = %v", cfg.Enrich.ExtraStopwords)
	}
	if terms := cfg.Taxonomy.Terms(); len(terms) != 2 || terms[0] != "go" || terms[1] != "rust" {
		t.Errorf("Terms = %v", terms)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("JOBINSIGHT_TEST_KEY", "from-env")
	path := writeConfig(t, `
api:
  app_id: "id"
  app_key: "${JOBINSIGHT_TEST_KEY}"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.AppKey != "from-env" {
		t.Errorf("AppKey = %q, want from-env", cfg.API.AppKey)
	}
}

func TestDefault_CredentialsFromEnv(t *testing.T) {
	t.Setenv("ADZUNA_APP_ID", "env-id")
	t.Setenv("ADZUNA_APP_KEY", "env-key")

	cfg := Default()
	if err := cfg.API.RequireCredentials(); err != nil {
		t.Fatalf("RequireCredentials: %v", err)
	}
	if cfg.API.AppID != "env-id" || cfg.API.AppKey != "env-key" {
		t.Errorf("credentials = %q/%q", cfg.API.AppID, cfg.API.AppKey)
	}
}

func TestRequireCredentials_Missing(t *testing.T) {
	if err := (APIConfig{AppID: "id"}).RequireCredentials(); err == nil {
		t.Error("expected error for missing app_key")
	}
	if err := (APIConfig{AppKey: "key"}).RequireCredentials(); err == nil {
		t.Error("expected error for missing app_id")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "fetch: [broken")
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected error for invalid YAML")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero max pages", "fetch:\n  max_pages: 0\n"},
		{"negative retries", "fetch:\n  max_retries: -1\n"},
		{"bad duration", "fetch:\n  page_delay:\n    min: soon\n"},
		{"reversed delay", "fetch:\n  retry_delay:\n    min: 20s\n    max: 5s\n"},
		{"zero bins", "enrich:\n  histogram_bins: 0\n"},
		{"zero timeout", "api:\n  timeout: 0s\n"},
		{"empty taxonomy", "taxonomy:\n  empty: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Errorf("Load: expected validation error")
			}
		})
	}
}

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "jobinsight.example.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Fetch.Titles) != 3 || cfg.Enrich.Database != "jobs.db" {
		t.Errorf("unexpected example config: %+v", cfg)
	}
}

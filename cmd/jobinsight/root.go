package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/amishk599/jobinsight/internal/adapter"
	"github.com/amishk599/jobinsight/internal/config"
	"github.com/amishk599/jobinsight/internal/fetcher"
	"github.com/amishk599/jobinsight/internal/pacing"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "jobinsight.yaml"

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobinsight",
	Short: "Engineering job market insights from Adzuna",
	Long:  "jobinsight fetches job postings from the Adzuna search API into a CSV dataset, then cleans, enriches and charts it.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBINSIGHT_CONFIG env var or ./jobinsight.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBINSIGHT_CONFIG env var > "./jobinsight.yaml" > built-in defaults
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("JOBINSIGHT_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		path = defaultConfigPath
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func newAdzunaAdapter(cfg *config.Config) *adapter.AdzunaAdapter {
	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	return adapter.NewAdzunaAdapter(adapter.AdzunaConfig{
		BaseURL:        cfg.API.BaseURL,
		AppID:          cfg.API.AppID,
		AppKey:         cfg.API.AppKey,
		ResultsPerPage: cfg.API.ResultsPerPage,
		FullTime:       cfg.API.FullTime,
	}, httpClient)
}

func buildPaginator(cfg *config.Config, logger *slog.Logger) *fetcher.Paginator {
	f := cfg.Fetch
	return fetcher.NewPaginator(newAdzunaAdapter(cfg), fetcher.Options{
		MaxRetries:    f.MaxRetries,
		PageDelay:     pacing.NewUniformDelay(f.PageDelay.Min, f.PageDelay.Max),
		RetryDelay:    pacing.NewUniformDelay(f.RetryDelay.Min, f.RetryDelay.Max),
		RetrySamePage: f.RetrySamePage,
	}, logger)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/amishk599/jobinsight/internal/dataset"
	"github.com/amishk599/jobinsight/internal/report"
	"github.com/spf13/cobra"
)

var (
	fetchTitles   []string
	fetchMaxPages int
	fetchOutput   string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch job postings into a CSV file",
	Long:  "Pages through the Adzuna search API for every configured job title and writes all postings to one CSV file. Blocks until done or SIGINT/SIGTERM.",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringSliceVar(&fetchTitles, "titles", nil, "job titles to search (overrides fetch.titles)")
	fetchCmd.Flags().IntVar(&fetchMaxPages, "max-pages", 0, "page cap per title (overrides fetch.max_pages)")
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "output CSV path (overrides fetch.output)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if len(fetchTitles) > 0 {
		cfg.Fetch.Titles = fetchTitles
	}
	if fetchMaxPages > 0 {
		cfg.Fetch.MaxPages = fetchMaxPages
	}
	if fetchOutput != "" {
		cfg.Fetch.Output = fetchOutput
	}
	if err := cfg.API.RequireCredentials(); err != nil {
		logger.Error("missing API credentials", "error", err)
		os.Exit(1)
	}

	logger.Info("config loaded",
		"titles", len(cfg.Fetch.Titles),
		"max_pages", cfg.Fetch.MaxPages,
		"max_retries", cfg.Fetch.MaxRetries,
		"page_delay", cfg.Fetch.PageDelay.Min.String()+"-"+cfg.Fetch.PageDelay.Max.String(),
		"retry_same_page", cfg.Fetch.RetrySamePage,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	paginator := buildPaginator(cfg, logger)
	postings, results := paginator.FetchAll(ctx, cfg.Fetch.Titles, cfg.Fetch.MaxPages)

	reporter := report.NewLogReporter(logger)
	reporter.Titles(results)

	if len(postings) == 0 {
		logger.Info("no data to save")
		return nil
	}

	if err := dataset.WritePostings(cfg.Fetch.Output, postings); err != nil {
		logger.Error("failed to save postings", "error", err)
		os.Exit(1)
	}
	reporter.Saved("postings", cfg.Fetch.Output, len(postings))

	if ctx.Err() != nil {
		logger.Info("interrupted, partial results saved")
	}
	return nil
}

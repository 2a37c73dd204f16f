package main

import (
	"log/slog"
	"os"

	"github.com/amishk599/jobinsight/internal/config"
	"github.com/amishk599/jobinsight/internal/dataset"
	"github.com/amishk599/jobinsight/internal/enrich"
	"github.com/amishk599/jobinsight/internal/filter"
	"github.com/amishk599/jobinsight/internal/model"
	"github.com/amishk599/jobinsight/internal/report"
	"github.com/amishk599/jobinsight/internal/store"
	"github.com/amishk599/jobinsight/internal/taxonomy"
	"github.com/spf13/cobra"
)

var (
	enrichInput    string
	enrichOutput   string
	enrichDB       string
	enrichHTML     string
	enrichView     bool
	enrichNoCharts bool
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Clean, enrich and chart a fetched CSV",
	Long:  "Loads the fetched CSV, drops incomplete rows, derives city, state, average salary and skills, writes the cleaned CSV and renders the charts.",
	RunE:  runEnrich,
}

func init() {
	enrichCmd.Flags().StringVarP(&enrichInput, "input", "i", "", "input CSV path (overrides enrich.input)")
	enrichCmd.Flags().StringVarP(&enrichOutput, "output", "o", "", "cleaned CSV path (overrides enrich.output)")
	enrichCmd.Flags().StringVar(&enrichDB, "db", "", "mirror enriched rows into this SQLite file (overrides enrich.database)")
	enrichCmd.Flags().StringVar(&enrichHTML, "html", "", "write an HTML chart report (overrides enrich.html)")
	enrichCmd.Flags().BoolVar(&enrichView, "view", false, "browse charts in the interactive viewer")
	enrichCmd.Flags().BoolVar(&enrichNoCharts, "no-charts", false, "skip chart rendering")
	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	applyEnrichFlags(cfg)

	table, err := dataset.ReadTable(cfg.Enrich.Input)
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	logger.Info("dataset loaded", "path", cfg.Enrich.Input, "rows", len(table.Rows), "columns", len(table.Header))

	required := filter.NewRequiredColumns(dataset.ColSalaryMin, dataset.ColSalaryMax, dataset.ColCompany)
	pipeline := enrich.NewPipeline(required, taxonomy.NewMatcher(cfg.Taxonomy), logger)
	result := pipeline.Run(table)

	reporter := report.NewLogReporter(logger)
	reporter.Profile("before", result.Before)
	reporter.Profile("after", result.After)

	if err := dataset.WriteEnriched(cfg.Enrich.Output, result.Jobs); err != nil {
		logger.Error("failed to save cleaned dataset", "error", err)
		os.Exit(1)
	}
	reporter.Saved("cleaned", cfg.Enrich.Output, len(result.Jobs))

	if err := mirrorJobs(cfg.Enrich.Database, result.Jobs, logger); err != nil {
		logger.Error("failed to mirror into database", "path", cfg.Enrich.Database, "error", err)
		os.Exit(1)
	}
	if cfg.Enrich.Database != "" {
		reporter.Saved("sqlite", cfg.Enrich.Database, len(result.Jobs))
	}

	if enrichNoCharts {
		return nil
	}
	if err := renderCharts(cfg, result.Jobs, enrichView, reporter); err != nil {
		logger.Error("failed to render charts", "error", err)
		os.Exit(1)
	}
	return nil
}

func applyEnrichFlags(cfg *config.Config) {
	if enrichInput != "" {
		cfg.Enrich.Input = enrichInput
	}
	if enrichOutput != "" {
		cfg.Enrich.Output = enrichOutput
	}
	if enrichDB != "" {
		cfg.Enrich.Database = enrichDB
	}
	if enrichHTML != "" {
		cfg.Enrich.HTML = enrichHTML
	}
}

// mirrorJobs writes jobs to the SQLite file at path, or does nothing when
// path is empty.
func mirrorJobs(path string, jobs []model.EnrichedJob, logger *slog.Logger) error {
	var s model.EnrichedStore = store.NewNopStore()
	if path != "" {
		sqlStore, err := store.NewSQLiteStore(path)
		if err != nil {
			return err
		}
		defer sqlStore.Close()
		s = sqlStore
		logger.Debug("mirroring enriched rows", "path", path)
	}
	return s.SaveEnriched(jobs)
}

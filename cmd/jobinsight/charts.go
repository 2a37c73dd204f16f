package main

import (
	"fmt"
	"os"

	"github.com/amishk599/jobinsight/internal/charts"
	"github.com/amishk599/jobinsight/internal/config"
	"github.com/amishk599/jobinsight/internal/dataset"
	"github.com/amishk599/jobinsight/internal/model"
	"github.com/amishk599/jobinsight/internal/report"
	"github.com/amishk599/jobinsight/internal/viewer"
	"github.com/spf13/cobra"
)

const terminalWidth = 100

var (
	chartsInput string
	chartsHTML  string
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Browse charts of a cleaned CSV (TUI)",
	Long:  "Loads an already cleaned CSV and shows the chart picker TUI, or writes an HTML report with --html.",
	RunE:  runChartsCmd,
}

func init() {
	chartsCmd.Flags().StringVarP(&chartsInput, "input", "i", "", "cleaned CSV path (default: enrich.output)")
	chartsCmd.Flags().StringVar(&chartsHTML, "html", "", "write an HTML chart report instead of opening the viewer")
	rootCmd.AddCommand(chartsCmd)
}

func runChartsCmd(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	input := cfg.Enrich.Output
	if chartsInput != "" {
		input = chartsInput
	}
	jobs, err := dataset.ReadEnriched(input)
	if err != nil {
		logger.Error("failed to load cleaned dataset", "error", err)
		os.Exit(1)
	}
	logger.Info("dataset loaded", "path", input, "rows", len(jobs))

	// The config file's html path applies to enrich only; here the flag picks the mode.
	cfg.Enrich.HTML = chartsHTML
	if err := renderCharts(cfg, jobs, chartsHTML == "", report.NewLogReporter(logger)); err != nil {
		logger.Error("failed to render charts", "error", err)
		os.Exit(1)
	}
	return nil
}

// renderCharts builds the chart set and sends it to the HTML report when
// configured, then to the interactive viewer or the terminal.
func renderCharts(cfg *config.Config, jobs []model.EnrichedJob, interactive bool, reporter *report.LogReporter) error {
	opts := charts.DefaultOptions(cfg.Enrich.ExtraStopwords...)
	opts.TopN = cfg.Enrich.TopN
	opts.HistogramBins = cfg.Enrich.HistogramBins
	opts.CloudWords = cfg.Enrich.WordCloudWords

	cs, skipped := charts.Build(jobs, opts)
	reporter.Skipped(skipped)

	if cfg.Enrich.HTML != "" {
		if err := charts.WriteHTMLFile(cfg.Enrich.HTML, cs); err != nil {
			return err
		}
		reporter.Saved("html", cfg.Enrich.HTML, len(jobs))
	}

	if interactive {
		return viewer.Browse(cs)
	}
	if cfg.Enrich.HTML != "" {
		return nil
	}
	for _, c := range cs {
		fmt.Println(charts.RenderTerminal(c, terminalWidth))
	}
	return nil
}

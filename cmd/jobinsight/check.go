package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch one page, print it, exit",
	Long:  "One-shot probe: fetches page 1 of the first configured title, prints the postings, exits. Writes nothing.",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.API.RequireCredentials(); err != nil {
		logger.Error("missing API credentials", "error", err)
		os.Exit(1)
	}

	logger.Info("check mode: nothing will be written")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	title := cfg.Fetch.Titles[0]
	postings, err := newAdzunaAdapter(cfg).FetchPage(ctx, title, 1)
	if err != nil {
		logger.Error("fetch failed", "title", title, "error", err)
		os.Exit(1)
	}

	fmt.Printf("%-40s %-30s %s\n", "Title", "Company", "Location")
	fmt.Println(strings.Repeat("─", 100))
	for _, p := range postings {
		fmt.Printf("%-40.40s %-30.30s %s\n", p.Title, p.Company, p.Location)
	}

	logger.Info("check complete", "title", title, "postings", len(postings))
	return nil
}

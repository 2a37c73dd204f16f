package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "List the configured skill taxonomy",
	Long:  "Reads the config and prints a table of skill categories and their terms.",
	RunE:  runTaxonomy,
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-28s %-6s %s\n", "Category", "Terms", "Keywords")
	fmt.Println(strings.Repeat("─", 80))

	for _, category := range cfg.Taxonomy.Categories() {
		terms := cfg.Taxonomy[category]
		fmt.Printf("%-28s %-6d %s\n", category, len(terms), strings.Join(terms, ", "))
	}

	fmt.Printf("\nTotal: %d categories, %d distinct terms\n", len(cfg.Taxonomy.Categories()), len(cfg.Taxonomy.Terms()))
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/fraudguard/internal/config"
	"github.com/jonathan/fraudguard/internal/ingestion"
	"github.com/jonathan/fraudguard/internal/observability"
	"github.com/jonathan/fraudguard/internal/reporting"
	"github.com/jonathan/fraudguard/internal/scoring"
	"github.com/jonathan/fraudguard/internal/validation"
)

var (
	reportConfigPath string
	reportIn         string
	reportOut        string
	reportWorkers    int
	reportTopN       int
	reportVerbose    bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a fraud analysis report for a CSV batch",
	Long: `Validate, score and summarize a whole CSV of job postings: fraud counts,
the highest-risk postings, the most common risk factors, a per-industry
breakdown and advisory recommendations.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	reportCmd.Flags().StringVar(&reportIn, "in", "", "Path to the job postings CSV")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "Path to write the report JSON (default: stdout)")
	reportCmd.Flags().IntVar(&reportWorkers, "workers", 0, "Worker pool size (default: number of CPUs)")
	reportCmd.Flags().IntVar(&reportTopN, "top", 0, "How many top suspicious postings to keep (default: 10)")
	reportCmd.Flags().BoolVarP(&reportVerbose, "verbose", "v", false, "Print a boxed report summary to stdout")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if reportConfigPath != "" {
		loadedCfg, err := config.LoadConfig(reportConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("in") {
		cfg.Input = reportIn
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = reportOut
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = reportWorkers
	}
	if cmd.Flags().Changed("top") {
		cfg.TopN = reportTopN
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = reportVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{TopN: reporting.DefaultTopN})

	if cfg.Input == "" {
		return fmt.Errorf("--in is required (via flag or config)")
	}

	file, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	records, err := ingestion.ParseCSV(file)
	if err != nil {
		return fmt.Errorf("failed to parse CSV: %w", err)
	}

	result := validation.Validate(records)
	if !result.IsValid {
		observability.NewPrinter(os.Stderr).PrintValidation(&result)
		return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
	}

	records = ingestion.Clean(records)

	processor := reporting.NewProcessor(scoring.NewScorer()).
		WithWorkers(cfg.Workers).
		WithTopN(cfg.TopN)

	report, err := processor.GenerateReport(ctx, records)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintValidation(&result)
		printer.PrintReport(report)
	}

	out := os.Stdout
	if cfg.Output != "" {
		out, err = os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.Output != "" {
		fmt.Fprintf(os.Stdout, "Report written to %s\n", cfg.Output)
	}
	return nil
}

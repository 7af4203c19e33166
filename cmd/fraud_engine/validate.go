package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/fraudguard/internal/ingestion"
	"github.com/jonathan/fraudguard/internal/observability"
	"github.com/jonathan/fraudguard/internal/validation"
)

var (
	validateIn string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a job postings CSV against the required schema",
	Long:  "Check that a CSV file carries every required column and report data quality warnings (short descriptions, missing salaries, invalid employment types).",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateIn, "in", "", "Path to the job postings CSV (required)")
	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	file, err := os.Open(validateIn)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	records, err := ingestion.ParseCSV(file)
	if err != nil {
		return fmt.Errorf("failed to parse CSV: %w", err)
	}

	result := validation.Validate(records)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintValidation(&result)

	if !result.IsValid {
		return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
	}

	fmt.Fprintf(os.Stdout, "%d records validated (%d warnings)\n", len(records), len(result.Warnings))
	return nil
}

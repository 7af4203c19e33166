package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/fraudguard/internal/ingestion"
	"github.com/jonathan/fraudguard/internal/observability"
	"github.com/jonathan/fraudguard/internal/scoring"
	"github.com/jonathan/fraudguard/internal/types"
)

var (
	fetchURL     string
	fetchVerbose bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a job posting from a URL and score it",
	Long:  "Download a job posting page, extract its title and main text, and score the resulting record. Page structure is lost, so structural signals score from defaults; treat the result as a text-signal screen.",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchURL, "url", "u", "", "URL to fetch the job posting from (required)")
	fetchCmd.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "Print a boxed summary instead of raw JSON")
	_ = fetchCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	record, err := ingestion.IngestFromURL(ctx, fetchURL)
	if err != nil {
		return fmt.Errorf("failed to ingest from URL: %w", err)
	}

	cleaned := ingestion.Clean([]types.JobRecord{record})
	result := scoring.NewScorer().Predict(&cleaned[0])

	if fetchVerbose {
		fmt.Fprintf(os.Stdout, "Fetched: %s\n", record.Title)
		observability.NewPrinter(os.Stdout).PrintPrediction(&result)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

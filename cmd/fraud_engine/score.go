package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/fraudguard/internal/ingestion"
	"github.com/jonathan/fraudguard/internal/observability"
	"github.com/jonathan/fraudguard/internal/scoring"
	"github.com/jonathan/fraudguard/internal/types"
)

var (
	scoreIn      string
	scoreNoisy   bool
	scoreSeed    int64
	scoreVerbose bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single job posting from a JSON file",
	Long: `Score one job posting record (a JSON object with the CSV column names
as keys) and print the prediction as JSON. Scoring is deterministic unless
--noisy is given.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreIn, "in", "", "Path to a JSON job record (required)")
	scoreCmd.Flags().BoolVar(&scoreNoisy, "noisy", false, "Apply random jitter to the score")
	scoreCmd.Flags().Int64Var(&scoreSeed, "seed", 0, "Random seed for --noisy (0 = time-based)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a boxed summary instead of raw JSON")
	_ = scoreCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(scoreIn)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var record types.JobRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to parse job record JSON: %w", err)
	}

	cleaned := ingestion.Clean([]types.JobRecord{record})

	scorer := scoring.NewScorer()
	if scoreNoisy {
		seed := scoreSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		scorer = scorer.WithNoise(scoring.NewRandomNoise(rand.New(rand.NewSource(seed))))
	}

	result := scorer.Predict(&cleaned[0])

	if scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintPrediction(&result)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

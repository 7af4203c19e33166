// Package main provides the entry point for the fraudguard CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fraud_engine",
	Short: "Job posting fraud risk scoring",
	Long:  "fraud_engine validates job posting datasets, scores individual postings and whole batches for fraud risk, and serves the scoring engine over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

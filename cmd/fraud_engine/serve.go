package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/fraudguard/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the scoring engine: single and batch
prediction, report generation, and (when DATABASE_URL is set) stored
prediction history.

Required environment: JWT_SECRET and API_KEY_HASHES (comma-separated bcrypt
hashes of accepted API keys).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	keyHashes := server.LoadAPIKeyHashes()
	if len(keyHashes) == 0 {
		return fmt.Errorf("API_KEY_HASHES environment variable is required")
	}

	cfg := server.Config{
		Port:         servePort,
		DatabaseURL:  os.Getenv("DATABASE_URL"), // optional
		APIKeyHashes: keyHashes,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

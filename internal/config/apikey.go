// Package config provides API key configuration and hashing functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// APIKeyConfig holds configuration for API key hashing and verification.
type APIKeyConfig struct {
	BcryptCost int
	Pepper     string // optional global secret for additional security
}

// NewAPIKeyConfig creates a new API key configuration from environment variables.
// It reads BCRYPT_COST (default: 12) and optionally API_KEY_PEPPER.
func NewAPIKeyConfig() (*APIKeyConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &APIKeyConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("API_KEY_PEPPER"), // empty if not set
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *APIKeyConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashKey hashes an API key using bcrypt (with optional pepper).
func (c *APIKeyConfig) HashKey(key string) (string, error) {
	material := key
	if c.Pepper != "" {
		material = key + c.Pepper
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(material), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash API key: %w", err)
	}

	return string(hash), nil
}

// VerifyKey verifies an API key against a stored hash (with optional pepper).
func (c *APIKeyConfig) VerifyKey(key, storedHash string) bool {
	material := key
	if c.Pepper != "" {
		material = key + c.Pepper
	}

	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(material))
	return err == nil
}

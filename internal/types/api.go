package types

import (
	"github.com/go-playground/validator/v10"
)

// PredictRequest is the payload for single-record prediction.
type PredictRequest struct {
	Record JobRecord `json:"record"`
}

// BatchRequest is the payload for batch prediction and reporting.
type BatchRequest struct {
	Records []JobRecord `json:"records" validate:"required,min=1"`
}

// TokenRequest exchanges an API key for a short-lived access token.
type TokenRequest struct {
	APIKey string `json:"api_key" validate:"required,min=16"`
}

// TokenResponse carries the issued access token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// ModelInfo describes the scoring engine for the /model/info endpoint.
type ModelInfo struct {
	Name            string             `json:"name"`
	Version         string             `json:"version"`
	Weights         map[string]float64 `json:"weights"`
	RiskThresholds  map[string]float64 `json:"risk_thresholds"`
	FraudThreshold  float64            `json:"fraud_threshold"`
	RequiredColumns []string           `json:"required_columns"`
}

// Validate validates the BatchRequest using the validator.
func (r *BatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TokenRequest using the validator.
func (r *TokenRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

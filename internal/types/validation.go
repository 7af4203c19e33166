package types

// ValidationResult holds the outcome of validating a batch of job records.
// Errors are hard failures that halt processing; warnings flag suspect data
// but never block scoring.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

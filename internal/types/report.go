package types

// BatchSummary holds aggregate statistics for a processed batch.
// Fraudulent counts records the engine itself classified as fraudulent
// (risk score at or above the batch threshold), not the ground-truth label.
type BatchSummary struct {
	TotalProcessed   int     `json:"totalProcessed"`
	Fraudulent       int     `json:"fraudulent"`
	Legitimate       int     `json:"legitimate"`
	AverageRiskScore float64 `json:"averageRiskScore"`
	ProcessingTimeMs int64   `json:"processingTime"`
}

// ScoredRecord pairs a job record with its prediction.
type ScoredRecord struct {
	Record     JobRecord        `json:"record"`
	Prediction PredictionResult `json:"prediction"`
}

// FactorCount is one entry in the common-risk-factor histogram.
type FactorCount struct {
	Factor string `json:"factor"`
	Count  int    `json:"count"`
}

// IndustryStats is the per-industry fraud breakdown.
type IndustryStats struct {
	Industry   string  `json:"industry"`
	Total      int     `json:"total"`
	Fraudulent int     `json:"fraudulent"`
	FraudRate  float64 `json:"fraudRate"`
}

// BatchReport is the full report over a batch: summary statistics, the
// highest-risk records, the factor histogram, per-industry rates and
// advisory recommendations.
type BatchReport struct {
	Summary           BatchSummary    `json:"summary"`
	TopSuspicious     []ScoredRecord  `json:"topSuspicious"`
	CommonRiskFactors []FactorCount   `json:"commonRiskFactors"`
	IndustryBreakdown []IndustryStats `json:"industryBreakdown"`
	Recommendations   []string        `json:"recommendations"`
}

package db

import (
	"time"

	"github.com/google/uuid"
)

// BatchRun is the summary row persisted for one scored batch.
type BatchRun struct {
	ID               uuid.UUID `json:"id"`
	Source           string    `json:"source"`
	TotalProcessed   int       `json:"total_processed"`
	Fraudulent       int       `json:"fraudulent"`
	Legitimate       int       `json:"legitimate"`
	AverageRiskScore float64   `json:"average_risk_score"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	CreatedAt        time.Time `json:"created_at"`
}

// RunFilters holds optional filters for listing batch runs
type RunFilters struct {
	Source string
	Limit  int
}

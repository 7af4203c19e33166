package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/fraudguard/internal/types"
)

// SaveBatchRun stores a batch run summary row plus the full report as JSONB
// and returns the new run ID.
func (db *DB) SaveBatchRun(ctx context.Context, source string, report *types.BatchReport) (uuid.UUID, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO batch_runs
		   (source, total_processed, fraudulent, legitimate,
		    average_risk_score, processing_time_ms, report)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		source,
		report.Summary.TotalProcessed,
		report.Summary.Fraudulent,
		report.Summary.Legitimate,
		report.Summary.AverageRiskScore,
		report.Summary.ProcessingTimeMs,
		reportJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save batch run: %w", err)
	}
	return id, nil
}

// GetBatchRun retrieves a batch run summary by ID. Returns nil when no row
// matches.
func (db *DB) GetBatchRun(ctx context.Context, runID uuid.UUID) (*BatchRun, error) {
	var run BatchRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, source, total_processed, fraudulent, legitimate,
		        average_risk_score, processing_time_ms, created_at
		 FROM batch_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Source, &run.TotalProcessed, &run.Fraudulent,
		&run.Legitimate, &run.AverageRiskScore, &run.ProcessingTimeMs, &run.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get batch run: %w", err)
	}
	return &run, nil
}

// GetReport retrieves the stored report for a batch run. Returns nil when no
// row matches.
func (db *DB) GetReport(ctx context.Context, runID uuid.UUID) (*types.BatchReport, error) {
	var reportJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT report FROM batch_runs WHERE id = $1`,
		runID,
	).Scan(&reportJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report types.BatchReport
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// ListBatchRuns retrieves recent batch runs with optional filters
func (db *DB) ListBatchRuns(ctx context.Context, filters RunFilters) ([]BatchRun, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, source, total_processed, fraudulent, legitimate,
		       average_risk_score, processing_time_ms, created_at
		FROM batch_runs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Source != "" {
		query += fmt.Sprintf(" AND source = $%d", argNum)
		args = append(args, filters.Source)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch runs: %w", err)
	}
	defer rows.Close()

	var runs []BatchRun
	for rows.Next() {
		var run BatchRun
		if err := rows.Scan(&run.ID, &run.Source, &run.TotalProcessed, &run.Fraudulent,
			&run.Legitimate, &run.AverageRiskScore, &run.ProcessingTimeMs, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan batch run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteBatchRun deletes a batch run and its stored report
func (db *DB) DeleteBatchRun(ctx context.Context, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM batch_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete batch run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("batch run not found: %s", runID)
	}
	return nil
}

// Package reporting fans the scorer out over record collections and folds
// the per-record results into batch reports.
package reporting

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/fraudguard/internal/scoring"
	"github.com/jonathan/fraudguard/internal/types"
)

// FraudThreshold is the risk score at or above which a record counts as
// fraudulent in aggregate statistics. It is independent of the four-level
// risk categorization used for display.
const FraudThreshold = 0.5

// DefaultTopN is how many records the suspicious ranking and the factor
// histogram are truncated to.
const DefaultTopN = 10

// Processor scores batches of records. Per-record scoring is independent
// and runs on a bounded worker pool; aggregation happens only after all
// results are collected, so reports are deterministic regardless of
// completion order.
type Processor struct {
	scorer  *scoring.Scorer
	workers int
	topN    int
}

// NewProcessor creates a Processor around the given scorer with default
// worker and truncation settings.
func NewProcessor(scorer *scoring.Scorer) *Processor {
	return &Processor{
		scorer:  scorer,
		workers: runtime.NumCPU(),
		topN:    DefaultTopN,
	}
}

// WithWorkers returns a copy of the processor using the given pool size.
func (p *Processor) WithWorkers(workers int) *Processor {
	copied := *p
	if workers > 0 {
		copied.workers = workers
	}
	return &copied
}

// WithTopN returns a copy of the processor truncating rankings to n entries.
func (p *Processor) WithTopN(n int) *Processor {
	copied := *p
	if n > 0 {
		copied.topN = n
	}
	return &copied
}

// ScoreAll scores every record, preserving input order in the result slice.
func (p *Processor) ScoreAll(ctx context.Context, records []types.JobRecord) ([]types.ScoredRecord, error) {
	scored := make([]types.ScoredRecord, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scored[i] = types.ScoredRecord{
				Record:     records[i],
				Prediction: p.scorer.Predict(&records[i]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return scored, nil
}

// ProcessBatch scores a batch and returns its summary statistics.
func (p *Processor) ProcessBatch(ctx context.Context, records []types.JobRecord) (types.BatchSummary, error) {
	start := time.Now()
	scored, err := p.ScoreAll(ctx, records)
	if err != nil {
		return types.BatchSummary{}, err
	}
	return Summarize(scored, time.Since(start)), nil
}

// Summarize folds already-scored records into batch summary statistics.
func Summarize(scored []types.ScoredRecord, elapsed time.Duration) types.BatchSummary {
	fraudulent := 0
	totalRisk := 0.0
	for _, s := range scored {
		totalRisk += s.Prediction.RiskScore
		if s.Prediction.RiskScore >= FraudThreshold {
			fraudulent++
		}
	}

	average := 0.0
	if len(scored) > 0 {
		average = totalRisk / float64(len(scored))
	}

	return types.BatchSummary{
		TotalProcessed:   len(scored),
		Fraudulent:       fraudulent,
		Legitimate:       len(scored) - fraudulent,
		AverageRiskScore: average,
		ProcessingTimeMs: elapsed.Milliseconds(),
	}
}

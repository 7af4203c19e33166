package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/jonathan/fraudguard/internal/types"
)

// Advisory thresholds for the conditional recommendations.
const (
	highFraudRateThreshold = 0.3
	elevatedRiskThreshold  = 0.4
	unknownIndustryLabel   = "Unknown"
)

// fixedRecommendations are always included in a report, after any
// conditional advisories.
var fixedRecommendations = []string{
	"Monitor remote work positions more closely as they show higher fraud rates",
	"Verify company information and require company logos for all postings",
	"Implement screening questions for all job applications",
	"Cross-check salary ranges against industry averages before approving postings",
}

// GenerateReport scores a batch and folds the results into a full report:
// summary statistics, the highest-risk records, the factor histogram,
// per-industry fraud rates and advisory recommendations.
func (p *Processor) GenerateReport(ctx context.Context, records []types.JobRecord) (*types.BatchReport, error) {
	start := time.Now()
	scored, err := p.ScoreAll(ctx, records)
	if err != nil {
		return nil, err
	}
	summary := Summarize(scored, time.Since(start))

	return &types.BatchReport{
		Summary:           summary,
		TopSuspicious:     p.topSuspicious(scored),
		CommonRiskFactors: p.commonRiskFactors(scored),
		IndustryBreakdown: industryBreakdown(scored),
		Recommendations:   recommendations(summary),
	}, nil
}

// topSuspicious ranks records by descending risk score. The sort is stable,
// so ties keep their original input order.
func (p *Processor) topSuspicious(scored []types.ScoredRecord) []types.ScoredRecord {
	ranked := make([]types.ScoredRecord, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Prediction.RiskScore > ranked[j].Prediction.RiskScore
	})
	if len(ranked) > p.topN {
		ranked = ranked[:p.topN]
	}
	return ranked
}

// commonRiskFactors tallies identical factor strings across all records,
// sorted by descending count with first-seen order breaking ties.
func (p *Processor) commonRiskFactors(scored []types.ScoredRecord) []types.FactorCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, s := range scored {
		for _, factor := range s.Prediction.RiskFactors {
			if _, seen := counts[factor]; !seen {
				firstSeen[factor] = order
				order++
			}
			counts[factor]++
		}
	}

	factors := make([]types.FactorCount, 0, len(counts))
	for factor, count := range counts {
		factors = append(factors, types.FactorCount{Factor: factor, Count: count})
	}
	sort.Slice(factors, func(i, j int) bool {
		if factors[i].Count != factors[j].Count {
			return factors[i].Count > factors[j].Count
		}
		return firstSeen[factors[i].Factor] < firstSeen[factors[j].Factor]
	})

	if len(factors) > p.topN {
		factors = factors[:p.topN]
	}
	return factors
}

// industryBreakdown groups records by industry in first-seen order; records
// without an industry fall under the "Unknown" label.
func industryBreakdown(scored []types.ScoredRecord) []types.IndustryStats {
	index := make(map[string]int)
	var breakdown []types.IndustryStats

	for _, s := range scored {
		industry := s.Record.Industry
		if industry == "" {
			industry = unknownIndustryLabel
		}

		i, seen := index[industry]
		if !seen {
			i = len(breakdown)
			index[industry] = i
			breakdown = append(breakdown, types.IndustryStats{Industry: industry})
		}

		breakdown[i].Total++
		if s.Prediction.RiskScore >= FraudThreshold {
			breakdown[i].Fraudulent++
		}
	}

	for i := range breakdown {
		breakdown[i].FraudRate = float64(breakdown[i].Fraudulent) / float64(breakdown[i].Total) * 100
	}
	return breakdown
}

// recommendations prepends the conditional advisories to the fixed set.
func recommendations(summary types.BatchSummary) []string {
	var recs []string

	if summary.TotalProcessed > 0 {
		fraudRate := float64(summary.Fraudulent) / float64(summary.TotalProcessed)
		if fraudRate > highFraudRateThreshold {
			recs = append(recs, "High fraud rate detected - consider implementing additional verification steps")
		}
	}
	if summary.AverageRiskScore > elevatedRiskThreshold {
		recs = append(recs, "Overall risk level is elevated - review job posting guidelines")
	}

	return append(recs, fixedRecommendations...)
}

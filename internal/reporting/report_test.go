package reporting

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fraudguard/internal/scoring"
	"github.com/jonathan/fraudguard/internal/types"
)

// legitRecord scores well below the fraud threshold.
func legitRecord(industry string) types.JobRecord {
	return types.JobRecord{
		Description: strings.Repeat("coordinate audits and prepare statements for leadership review ", 10) +
			"bachelor degree qualifications skills certification",
		CompanyProfile:     "a family-owned accounting practice in denver with four partner offices and a forty year client history",
		SalaryRange:        "$60,000 - $90,000",
		EmploymentType:     "full-time",
		HasCompanyLogo:     true,
		HasQuestions:       true,
		RequiredExperience: "5 years of relevant experience",
		RequiredEducation:  "bachelor degree",
		Industry:           industry,
		Function:           "engineering",
	}
}

// fraudRecord stacks enough risk signals to clear the fraud threshold.
func fraudRecord(id string) types.JobRecord {
	return types.JobRecord{
		JobID:          id,
		Description:    "gig!!",
		Telecommuting:  true,
		HasCompanyLogo: false,
		Industry:       "marketing",
	}
}

func newTestProcessor() *Processor {
	return NewProcessor(scoring.NewScorer())
}

func TestProcessBatch_CountsAgainstThreshold(t *testing.T) {
	records := []types.JobRecord{
		fraudRecord("f1"), fraudRecord("f2"), fraudRecord("f3"),
		legitRecord("biotechnology"), legitRecord("biotechnology"), legitRecord("biotechnology"),
		legitRecord("hospitality"), legitRecord("hospitality"), legitRecord("hospitality"), legitRecord("hospitality"),
	}

	summary, err := newTestProcessor().ProcessBatch(context.Background(), records)

	require.NoError(t, err)
	assert.Equal(t, 10, summary.TotalProcessed)
	assert.Equal(t, 3, summary.Fraudulent)
	assert.Equal(t, 7, summary.Legitimate)
	assert.Greater(t, summary.AverageRiskScore, 0.0)
	assert.Less(t, summary.AverageRiskScore, 1.0)
	assert.GreaterOrEqual(t, summary.ProcessingTimeMs, int64(0))
}

func TestProcessBatch_EmptyBatch(t *testing.T) {
	summary, err := newTestProcessor().ProcessBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalProcessed)
	assert.Equal(t, 0.0, summary.AverageRiskScore)
}

func TestScoreAll_PreservesInputOrder(t *testing.T) {
	records := []types.JobRecord{
		legitRecord("biotechnology"),
		fraudRecord("f1"),
		legitRecord("hospitality"),
		fraudRecord("f2"),
	}

	scored, err := newTestProcessor().WithWorkers(4).ScoreAll(context.Background(), records)

	require.NoError(t, err)
	require.Len(t, scored, 4)
	assert.Equal(t, "f1", scored[1].Record.JobID)
	assert.Equal(t, "f2", scored[3].Record.JobID)
}

func TestGenerateReport_TopSuspiciousStableOrder(t *testing.T) {
	records := []types.JobRecord{
		legitRecord("biotechnology"),
		fraudRecord("a"),
		fraudRecord("b"),
		legitRecord("hospitality"),
		fraudRecord("c"),
	}

	report, err := newTestProcessor().GenerateReport(context.Background(), records)

	require.NoError(t, err)
	require.Len(t, report.TopSuspicious, 5)
	// Identical scores keep their input order.
	assert.Equal(t, "a", report.TopSuspicious[0].Record.JobID)
	assert.Equal(t, "b", report.TopSuspicious[1].Record.JobID)
	assert.Equal(t, "c", report.TopSuspicious[2].Record.JobID)
	for i := 1; i < len(report.TopSuspicious); i++ {
		assert.GreaterOrEqual(t,
			report.TopSuspicious[i-1].Prediction.RiskScore,
			report.TopSuspicious[i].Prediction.RiskScore)
	}
}

func TestGenerateReport_TopSuspiciousTruncatedToTen(t *testing.T) {
	var records []types.JobRecord
	for i := 0; i < 12; i++ {
		records = append(records, fraudRecord("x"))
	}

	report, err := newTestProcessor().GenerateReport(context.Background(), records)

	require.NoError(t, err)
	assert.Len(t, report.TopSuspicious, 10)
}

func TestGenerateReport_CommonRiskFactors(t *testing.T) {
	partial := legitRecord("biotechnology")
	partial.SalaryRange = ""
	partial.Telecommuting = true

	records := []types.JobRecord{
		fraudRecord("f1"), fraudRecord("f2"), fraudRecord("f3"),
		partial,
	}

	report, err := newTestProcessor().GenerateReport(context.Background(), records)

	require.NoError(t, err)
	factors := report.CommonRiskFactors
	require.NotEmpty(t, factors)
	assert.LessOrEqual(t, len(factors), 10)

	// Counts are non-increasing.
	for i := 1; i < len(factors); i++ {
		assert.GreaterOrEqual(t, factors[i-1].Count, factors[i].Count)
	}

	// The two factors shared by all four records lead, tie broken by
	// first-seen order.
	assert.Equal(t, "Missing or vague salary information", factors[0].Factor)
	assert.Equal(t, 4, factors[0].Count)
	assert.Equal(t, "Remote work position (statistically higher fraud risk)", factors[1].Factor)
	assert.Equal(t, 4, factors[1].Count)
}

func TestGenerateReport_IndustryBreakdown(t *testing.T) {
	unknown := fraudRecord("u1")
	unknown.Industry = ""

	records := []types.JobRecord{
		fraudRecord("f1"), fraudRecord("f2"),
		legitRecord("biotechnology"),
		unknown,
	}

	report, err := newTestProcessor().GenerateReport(context.Background(), records)

	require.NoError(t, err)
	require.Len(t, report.IndustryBreakdown, 3)

	// First-seen grouping order.
	assert.Equal(t, "marketing", report.IndustryBreakdown[0].Industry)
	assert.Equal(t, 2, report.IndustryBreakdown[0].Total)
	assert.Equal(t, 2, report.IndustryBreakdown[0].Fraudulent)
	assert.Equal(t, 100.0, report.IndustryBreakdown[0].FraudRate)

	assert.Equal(t, "biotechnology", report.IndustryBreakdown[1].Industry)
	assert.Equal(t, 0, report.IndustryBreakdown[1].Fraudulent)
	assert.Equal(t, 0.0, report.IndustryBreakdown[1].FraudRate)

	assert.Equal(t, "Unknown", report.IndustryBreakdown[2].Industry)
	assert.Equal(t, 1, report.IndustryBreakdown[2].Total)

	// Per-industry fraudulent counts reconcile with the summary.
	totalFraudulent := 0
	totalRecords := 0
	for _, stats := range report.IndustryBreakdown {
		totalFraudulent += stats.Fraudulent
		totalRecords += stats.Total
	}
	assert.Equal(t, report.Summary.Fraudulent, totalFraudulent)
	assert.Equal(t, report.Summary.TotalProcessed, totalRecords)
}

func TestRecommendations_FixedSetAlwaysPresent(t *testing.T) {
	recs := recommendations(types.BatchSummary{TotalProcessed: 10, Fraudulent: 1, AverageRiskScore: 0.2})

	assert.Equal(t, fixedRecommendations, recs)
}

func TestRecommendations_ConditionalAdvisoriesPrepended(t *testing.T) {
	recs := recommendations(types.BatchSummary{TotalProcessed: 10, Fraudulent: 4, AverageRiskScore: 0.55})

	require.Len(t, recs, len(fixedRecommendations)+2)
	assert.Equal(t, "High fraud rate detected - consider implementing additional verification steps", recs[0])
	assert.Equal(t, "Overall risk level is elevated - review job posting guidelines", recs[1])
	assert.Equal(t, fixedRecommendations, recs[2:])
}

func TestRecommendations_ThresholdsAreStrict(t *testing.T) {
	// Exactly 30% fraud and exactly 0.4 average do not trigger advisories.
	recs := recommendations(types.BatchSummary{TotalProcessed: 10, Fraudulent: 3, AverageRiskScore: 0.4})

	assert.Equal(t, fixedRecommendations, recs)
}

func TestGenerateReport_DeterministicUnderParallelism(t *testing.T) {
	var records []types.JobRecord
	for i := 0; i < 20; i++ {
		records = append(records, fraudRecord("f"), legitRecord("biotechnology"))
	}

	p := newTestProcessor().WithWorkers(8)
	first, err := p.GenerateReport(context.Background(), records)
	require.NoError(t, err)
	second, err := p.GenerateReport(context.Background(), records)
	require.NoError(t, err)

	// Timing differs between runs; everything else must not.
	second.Summary.ProcessingTimeMs = first.Summary.ProcessingTimeMs
	assert.Equal(t, first, second)
}

func TestGenerateReport_EmptyBatch(t *testing.T) {
	report, err := newTestProcessor().GenerateReport(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, report.TopSuspicious)
	assert.Empty(t, report.CommonRiskFactors)
	assert.Empty(t, report.IndustryBreakdown)
	assert.Equal(t, fixedRecommendations, report.Recommendations)
}

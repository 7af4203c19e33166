package scoring

import (
	"math/rand"
	"testing"

	"github.com/jonathan/fraudguard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict_WeightedCombination(t *testing.T) {
	s := NewScorer()
	record := &types.JobRecord{
		Description: neutralPad(250),
		SalaryRange: "competitive pay plus benefits",
	}

	result := s.Predict(record)

	text := s.ScoreText(record)
	structural := s.ScoreStructural(record)
	company := s.ScoreCompany(record)
	expected := text.Score*TextWeight + structural.Score*StructuralWeight + company.Score*CompanyWeight

	assert.InDelta(t, expected, result.RiskScore, 1e-9)
	assert.Equal(t, text.Score, result.FeatureScores.TextAnalysis)
	assert.Equal(t, structural.Score, result.FeatureScores.StructuralFeatures)
	assert.Equal(t, company.Score, result.FeatureScores.CompanyVerification)
}

func TestPredict_SubScoresAndTotalAreBounded(t *testing.T) {
	s := NewScorer()

	records := []*types.JobRecord{
		{},
		{Title: "make money fast work from home no experience needed easy money get rich quick"},
		{Description: neutralPad(600), CompanyProfile: neutralPad(200), HasCompanyLogo: true, HasQuestions: true},
	}

	for _, record := range records {
		result := s.Predict(record)
		assert.GreaterOrEqual(t, result.RiskScore, 0.0)
		assert.LessOrEqual(t, result.RiskScore, 1.0)
		assert.GreaterOrEqual(t, result.FeatureScores.TextAnalysis, 0.0)
		assert.LessOrEqual(t, result.FeatureScores.TextAnalysis, 1.0)
		assert.GreaterOrEqual(t, result.FeatureScores.StructuralFeatures, 0.0)
		assert.LessOrEqual(t, result.FeatureScores.StructuralFeatures, 1.0)
		assert.GreaterOrEqual(t, result.FeatureScores.CompanyVerification, 0.0)
		assert.LessOrEqual(t, result.FeatureScores.CompanyVerification, 1.0)
	}
}

func TestLevelFor_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		level types.RiskLevel
	}{
		{0.0, types.RiskLow},
		{0.29, types.RiskLow},
		{0.3, types.RiskMedium},
		{0.59, types.RiskMedium},
		{0.6, types.RiskHigh},
		{0.79, types.RiskHigh},
		{0.8, types.RiskCritical},
		{1.0, types.RiskCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, LevelFor(tt.score), "score %v", tt.score)
	}
}

func TestLevelFor_Monotonic(t *testing.T) {
	previous := -1
	for score := 0.0; score <= 1.0; score += 0.01 {
		rank := LevelFor(score).Rank()
		require.GreaterOrEqual(t, rank, previous, "rank regressed at score %v", score)
		previous = rank
	}
}

func TestPredict_StackedRiskSignalsScoreHigh(t *testing.T) {
	s := NewScorer()
	record := &types.JobRecord{
		Description:    "gig!!",
		Telecommuting:  true,
		HasCompanyLogo: false,
		Industry:       "marketing",
	}

	result := s.Predict(record)

	require.True(t, result.RiskLevel == types.RiskHigh || result.RiskLevel == types.RiskCritical,
		"expected High or Critical, got %s (score %v)", result.RiskLevel, result.RiskScore)
}

func TestPredict_ProfessionalPostingScoresLow(t *testing.T) {
	s := NewScorer()
	record := &types.JobRecord{
		Title: "Senior Financial Analyst",
		Description: "candidates must hold a bachelor certification in accounting and will prepare quarterly statements, " +
			"coordinate audits with external partners and present findings to leadership " + neutralPad(430),
		EmploymentType:     "full-time",
		HasCompanyLogo:     true,
		HasQuestions:       true,
		RequiredExperience: "5 years",
		SalaryRange:        "$80,000 - $100,000",
	}

	result := s.Predict(record)

	assert.Equal(t, types.RiskLow, result.RiskLevel)
}

func TestPredict_DeterministicByDefault(t *testing.T) {
	s := NewScorer()
	record := &types.JobRecord{
		Title:       "Office Coordinator",
		Description: "easy money urgent " + neutralPad(150),
		Industry:    "sales",
	}

	first := s.Predict(record)
	second := s.Predict(record)

	assert.Equal(t, first, second)
	assert.Equal(t, 0.85, first.Confidence)
}

func TestPredict_SeededNoiseIsReproducible(t *testing.T) {
	record := &types.JobRecord{Description: neutralPad(250), SalaryRange: "competitive pay plus benefits"}

	first := NewScorer().WithNoise(NewRandomNoise(rand.New(rand.NewSource(42)))).Predict(record)
	second := NewScorer().WithNoise(NewRandomNoise(rand.New(rand.NewSource(42)))).Predict(record)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first.Confidence, 0.75)
	assert.Less(t, first.Confidence, 0.95)
}

func TestPredict_NoiseStaysWithinJitterBand(t *testing.T) {
	base := NewScorer()
	noisy := base.WithNoise(NewRandomNoise(rand.New(rand.NewSource(7))))
	record := &types.JobRecord{Description: neutralPad(250), SalaryRange: "$60,000 - $90,000", HasCompanyLogo: true}

	baseline := base.Predict(record).RiskScore
	for i := 0; i < 50; i++ {
		perturbed := noisy.Predict(record).RiskScore
		assert.InDelta(t, baseline, perturbed, 0.05+1e-9)
	}
}

func TestPredict_FactorOrderIsStable(t *testing.T) {
	s := NewScorer()
	record := &types.JobRecord{
		Description:   "instant money guaranteed",
		Telecommuting: true,
		Industry:      "data entry",
	}

	result := s.Predict(record)

	// Text factors first, then structural, then company.
	require.NotEmpty(t, result.RiskFactors)
	assert.Equal(t, `High-risk phrase detected: "guaranteed"`, result.RiskFactors[0])
	assert.Contains(t, result.RiskFactors, "Remote work position (statistically higher fraud risk)")
	assert.Contains(t, result.RiskFactors, "Industry category with higher fraud rates")
}

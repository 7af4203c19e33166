package scoring

import "github.com/jonathan/fraudguard/internal/types"

// Weights for combining the three sub-scores into the final risk score.
const (
	TextWeight       = 0.40
	StructuralWeight = 0.35
	CompanyWeight    = 0.25
)

// Risk-level thresholds on the final clamped score.
const (
	CriticalThreshold = 0.8
	HighThreshold     = 0.6
	MediumThreshold   = 0.3
)

// Scorer runs the feature extractors and aggregates their scores.
// The zero value is not usable; construct one with NewScorer.
type Scorer struct {
	Vocab Vocabulary
	Noise Noise
}

// NewScorer returns a deterministic scorer with the default vocabularies.
func NewScorer() *Scorer {
	return &Scorer{
		Vocab: DefaultVocabulary(),
		Noise: NoNoise{},
	}
}

// WithNoise returns a copy of the scorer using the given noise stage.
func (s *Scorer) WithNoise(noise Noise) *Scorer {
	copied := *s
	copied.Noise = noise
	return &copied
}

// Predict scores a single record: the three extractors run independently,
// their scores combine under the fixed weights, and the result maps to a
// risk level. The sub-scores are packaged verbatim for explainability.
func (s *Scorer) Predict(record *types.JobRecord) types.PredictionResult {
	text := s.ScoreText(record)
	structural := s.ScoreStructural(record)
	company := s.ScoreCompany(record)

	riskScore := text.Score*TextWeight + structural.Score*StructuralWeight + company.Score*CompanyWeight
	riskScore = clamp(riskScore + s.Noise.Jitter())

	riskFactors := concatFactors(text.RiskFactors, structural.RiskFactors, company.RiskFactors)
	positiveFactors := concatFactors(text.PositiveFactors, structural.PositiveFactors, company.PositiveFactors)

	return types.PredictionResult{
		RiskScore:       riskScore,
		RiskLevel:       LevelFor(riskScore),
		Confidence:      s.Noise.Confidence(),
		RiskFactors:     riskFactors,
		PositiveFactors: positiveFactors,
		FeatureScores: types.FeatureScores{
			TextAnalysis:        text.Score,
			StructuralFeatures:  structural.Score,
			CompanyVerification: company.Score,
		},
	}
}

// LevelFor maps a risk score to its categorical level.
func LevelFor(score float64) types.RiskLevel {
	switch {
	case score >= CriticalThreshold:
		return types.RiskCritical
	case score >= HighThreshold:
		return types.RiskHigh
	case score >= MediumThreshold:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

func concatFactors(lists ...[]string) []string {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	out := make([]string, 0, total)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

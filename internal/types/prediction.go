package types

// RiskLevel is the four-tier categorical label derived from a risk score.
type RiskLevel string

// Risk levels in ascending order of severity.
const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// Rank returns the position of the level on the Low < Medium < High < Critical
// order, for monotonicity comparisons. Unknown levels rank below Low.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return -1
	}
}

// FeatureScore is the output of a single feature extractor: a score bounded
// to [0,1] plus the human-readable factors that contributed to it.
type FeatureScore struct {
	Score           float64  `json:"score"`
	RiskFactors     []string `json:"risk_factors"`
	PositiveFactors []string `json:"positive_factors"`
}

// FeatureScores packages the three sub-scores for explainability.
type FeatureScores struct {
	TextAnalysis        float64 `json:"text_analysis"`
	StructuralFeatures  float64 `json:"structural_features"`
	CompanyVerification float64 `json:"company_verification"`
}

// PredictionResult is the full scoring outcome for one job record. It is
// derived entirely from the record and never persisted by the engine.
type PredictionResult struct {
	RiskScore       float64       `json:"risk_score"`
	RiskLevel       RiskLevel     `json:"risk_level"`
	Confidence      float64       `json:"confidence"`
	RiskFactors     []string      `json:"risk_factors"`
	PositiveFactors []string      `json:"positive_factors"`
	FeatureScores   FeatureScores `json:"feature_scores"`
}

package scoring

import (
	"strings"

	"github.com/jonathan/fraudguard/internal/types"
)

// ScoreCompany evaluates how verifiable the posting company looks: profile
// length and language, plus how specific the industry and function fields are.
func (s *Scorer) ScoreCompany(record *types.JobRecord) types.FeatureScore {
	score := 0.0
	var riskFactors, positiveFactors []string

	profile := strings.ToLower(record.CompanyProfile)

	switch profileLen := len(profile); {
	case profileLen < 10:
		score += 0.4
		riskFactors = append(riskFactors, "Missing or extremely brief company profile")
	case profileLen < 50:
		score += 0.25
		riskFactors = append(riskFactors, "Very brief company profile")
	case profileLen < 100:
		score += 0.1
		riskFactors = append(riskFactors, "Brief company profile")
	default:
		score -= 0.1
		positiveFactors = append(positiveFactors, "Detailed company information provided")
	}

	suspiciousCount := countMatches(profile, s.Vocab.SuspiciousCompanyTerms)
	switch {
	case suspiciousCount > 2:
		score += 0.3
		riskFactors = append(riskFactors, "Company profile contains suspicious promotional language")
	case suspiciousCount > 0:
		score += 0.15
		riskFactors = append(riskFactors, "Some promotional language in company profile")
	}

	genericCount := countMatches(profile, s.Vocab.GenericCompanyTerms)
	if genericCount > 3 {
		score += 0.2
		riskFactors = append(riskFactors, "Very generic company description")
	} else if genericCount == 0 && len(profile) > 50 {
		score -= 0.05
		positiveFactors = append(positiveFactors, "Specific company information provided")
	}

	industry := strings.ToLower(record.Industry)
	if containsExact(s.Vocab.HighRiskIndustries, industry) {
		score += 0.15
		riskFactors = append(riskFactors, "Industry category with higher fraud rates")
	} else if industry != "" && len(industry) > 3 {
		score -= 0.05
		positiveFactors = append(positiveFactors, "Specific industry category provided")
	} else if len(industry) < 3 {
		score += 0.1
		riskFactors = append(riskFactors, "Missing or vague industry information")
	}

	function := strings.ToLower(record.Function)
	if containsExact(s.Vocab.VagueFunctions, function) {
		score += 0.1
		riskFactors = append(riskFactors, "Vague job function specified")
	} else if function != "" && len(function) > 3 {
		score -= 0.05
		positiveFactors = append(positiveFactors, "Specific job function provided")
	}

	return types.FeatureScore{
		Score:           clamp(score),
		RiskFactors:     riskFactors,
		PositiveFactors: positiveFactors,
	}
}

// containsExact reports whether value is a member of the list.
func containsExact(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

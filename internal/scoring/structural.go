package scoring

import (
	"strings"

	"github.com/jonathan/fraudguard/internal/types"
)

// ScoreStructural evaluates pure field-presence and category signals:
// remote work, company logo, screening questions, employment type and the
// experience/education requirements. No free-text parsing happens here.
func (s *Scorer) ScoreStructural(record *types.JobRecord) types.FeatureScore {
	score := 0.0
	var riskFactors, positiveFactors []string

	if record.Telecommuting {
		score += 0.2
		riskFactors = append(riskFactors, "Remote work position (statistically higher fraud risk)")
	} else {
		score -= 0.05
		positiveFactors = append(positiveFactors, "Office-based position")
	}

	if !record.HasCompanyLogo {
		score += 0.25
		riskFactors = append(riskFactors, "No company logo provided")
	} else {
		score -= 0.1
		positiveFactors = append(positiveFactors, "Company logo present")
	}

	if !record.HasQuestions {
		score += 0.2
		riskFactors = append(riskFactors, "No screening questions for applicants")
	} else {
		score -= 0.05
		positiveFactors = append(positiveFactors, "Screening questions included")
	}

	empType := strings.ToLower(record.EmploymentType)
	if strings.Contains(empType, "part") || strings.Contains(empType, "temporary") || strings.Contains(empType, "contract") {
		score += 0.1
		riskFactors = append(riskFactors, "Non-permanent employment type")
	} else if strings.Contains(empType, "full") {
		score -= 0.05
		positiveFactors = append(positiveFactors, "Full-time position offered")
	}

	experience := strings.ToLower(record.RequiredExperience)
	if experience == "" || strings.Contains(experience, "no experience") || strings.Contains(experience, "entry level") || len(experience) < 5 {
		score += 0.2
		riskFactors = append(riskFactors, "Minimal or no experience requirements")
	} else if strings.Contains(experience, "year") || strings.Contains(experience, "experience") {
		score -= 0.1
		positiveFactors = append(positiveFactors, "Specific experience requirements listed")
	}

	education := strings.ToLower(record.RequiredEducation)
	if education == "" || strings.Contains(education, "high school") || strings.Contains(education, "no degree") || len(education) < 5 {
		score += 0.15
		riskFactors = append(riskFactors, "Low or no education requirements")
	} else if strings.Contains(education, "bachelor") || strings.Contains(education, "degree") || strings.Contains(education, "university") {
		score -= 0.1
		positiveFactors = append(positiveFactors, "Higher education requirements specified")
	}

	return types.FeatureScore{
		Score:           clamp(score),
		RiskFactors:     riskFactors,
		PositiveFactors: positiveFactors,
	}
}

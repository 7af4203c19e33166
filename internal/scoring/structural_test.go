package scoring

import (
	"testing"

	"github.com/jonathan/fraudguard/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScoreStructural_AllRiskSignals(t *testing.T) {
	s := NewScorer()
	record := &types.JobRecord{
		Telecommuting:      true,
		HasCompanyLogo:     false,
		HasQuestions:       false,
		EmploymentType:     "part-time",
		RequiredExperience: "",
		RequiredEducation:  "",
	}

	result := s.ScoreStructural(record)

	// 0.2 + 0.25 + 0.2 + 0.1 + 0.2 + 0.15 exceeds the bound and clamps.
	assert.Equal(t, 1.0, result.Score)
	assert.Len(t, result.RiskFactors, 6)
	assert.Empty(t, result.PositiveFactors)
}

func TestScoreStructural_AllPositiveSignals(t *testing.T) {
	s := NewScorer()
	record := &types.JobRecord{
		Telecommuting:      false,
		HasCompanyLogo:     true,
		HasQuestions:       true,
		EmploymentType:     "Full-time",
		RequiredExperience: "5 years of relevant experience",
		RequiredEducation:  "bachelor degree or equivalent",
	}

	result := s.ScoreStructural(record)

	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.RiskFactors)
	assert.Equal(t, []string{
		"Office-based position",
		"Company logo present",
		"Screening questions included",
		"Full-time position offered",
		"Specific experience requirements listed",
		"Higher education requirements specified",
	}, result.PositiveFactors)
}

func TestScoreStructural_EmploymentTypeSubstrings(t *testing.T) {
	s := NewScorer()

	tests := []struct {
		name     string
		empType  string
		risk     bool
		positive bool
	}{
		{"contract", "Contract", true, false},
		{"temporary", "temporary placement", true, false},
		{"part", "PART-TIME", true, false},
		{"full", "full-time", false, true},
		{"neither", "seasonal", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &types.JobRecord{EmploymentType: tt.empType}
			result := s.ScoreStructural(record)
			if tt.risk {
				assert.Contains(t, result.RiskFactors, "Non-permanent employment type")
			} else {
				assert.NotContains(t, result.RiskFactors, "Non-permanent employment type")
			}
			if tt.positive {
				assert.Contains(t, result.PositiveFactors, "Full-time position offered")
			} else {
				assert.NotContains(t, result.PositiveFactors, "Full-time position offered")
			}
		})
	}
}

func TestScoreStructural_ExperienceEdgeCases(t *testing.T) {
	s := NewScorer()

	// "entry level" is flagged even though the value is long enough.
	record := &types.JobRecord{RequiredExperience: "entry level candidates welcome"}
	result := s.ScoreStructural(record)
	assert.Contains(t, result.RiskFactors, "Minimal or no experience requirements")

	// Values shorter than 5 characters count as missing.
	record = &types.JobRecord{RequiredExperience: "none"}
	result = s.ScoreStructural(record)
	assert.Contains(t, result.RiskFactors, "Minimal or no experience requirements")
}

func TestScoreStructural_EducationEdgeCases(t *testing.T) {
	s := NewScorer()

	record := &types.JobRecord{RequiredEducation: "high school diploma preferred"}
	result := s.ScoreStructural(record)
	assert.Contains(t, result.RiskFactors, "Low or no education requirements")

	record = &types.JobRecord{RequiredEducation: "university coursework in finance"}
	result = s.ScoreStructural(record)
	assert.Contains(t, result.PositiveFactors, "Higher education requirements specified")
}

// Package scoring implements the fixed-rule risk scoring engine for job postings.
//
// Three independent extractors map a record to bounded sub-scores with
// human-readable factors; Predict combines them with fixed weights into a
// calibrated risk score and category. All weights, thresholds and term lists
// are constants forming part of the contract: the same record always yields
// the same score and factor lists (the optional noise stage excepted).
package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/fraudguard/internal/types"
)

// ScoreText analyzes the free-text fields of a record: title, description
// and requirements are lower-cased and concatenated, then matched against
// the suspicious, high-risk and legitimate vocabularies. Description length
// and the salary field contribute their own bands.
func (s *Scorer) ScoreText(record *types.JobRecord) types.FeatureScore {
	score := 0.0
	var riskFactors, positiveFactors []string

	text := strings.ToLower(record.Title + " " + record.Description + " " + record.Requirements)

	// Tiered: only the highest applicable tier fires.
	suspiciousCount := countMatches(text, s.Vocab.SuspiciousKeywords)
	switch {
	case suspiciousCount > 4:
		score += 0.5
		riskFactors = append(riskFactors, "Multiple suspicious keywords detected")
	case suspiciousCount > 2:
		score += 0.3
		riskFactors = append(riskFactors, "Some suspicious keywords found")
	case suspiciousCount > 0:
		score += 0.15
		riskFactors = append(riskFactors, "Minor suspicious keywords detected")
	}

	// Additive: every matching phrase contributes on its own.
	for _, phrase := range s.Vocab.HighRiskPhrases {
		if strings.Contains(text, phrase) {
			score += 0.2
			riskFactors = append(riskFactors, fmt.Sprintf("High-risk phrase detected: %q", phrase))
		}
	}

	legitimateCount := countMatches(text, s.Vocab.LegitimateIndicators)
	switch {
	case legitimateCount > 3:
		score -= 0.25
		positiveFactors = append(positiveFactors, "Professional job requirements specified")
	case legitimateCount > 1:
		score -= 0.1
		positiveFactors = append(positiveFactors, "Some professional indicators found")
	}

	switch descLen := len(record.Description); {
	case descLen < 30:
		score += 0.4
		riskFactors = append(riskFactors, "Extremely short job description")
	case descLen < 100:
		score += 0.25
		riskFactors = append(riskFactors, "Very short job description")
	case descLen < 200:
		score += 0.1
		riskFactors = append(riskFactors, "Short job description")
	case descLen > 500:
		score -= 0.1
		positiveFactors = append(positiveFactors, "Detailed job description provided")
	}

	score += s.scoreSalary(record.SalaryRange, &riskFactors, &positiveFactors)

	return types.FeatureScore{
		Score:           clamp(score),
		RiskFactors:     riskFactors,
		PositiveFactors: positiveFactors,
	}
}

// scoreSalary applies the three mutually exclusive salary branches: concrete
// dollar figures, promotional language, then missing/vague text.
func (s *Scorer) scoreSalary(salaryRange string, riskFactors, positiveFactors *[]string) float64 {
	salary := strings.ToLower(salaryRange)

	switch {
	case strings.Contains(salary, "$"):
		// Digit runs are scanned contiguously, so "$80,000" contributes 80
		// and 000 as separate runs; the branch keys off the maximum run.
		runs := digitRuns(salary)
		if len(runs) == 0 {
			return 0
		}
		maxSalary := runs[0]
		for _, n := range runs[1:] {
			if n > maxSalary {
				maxSalary = n
			}
		}
		switch {
		case maxSalary > 300:
			*riskFactors = append(*riskFactors, "Unrealistically high salary offered")
			return 0.3
		case maxSalary > 200:
			*riskFactors = append(*riskFactors, "Very high salary range")
			return 0.15
		case maxSalary > 50 && maxSalary < 150:
			*positiveFactors = append(*positiveFactors, "Reasonable salary range")
			return -0.05
		}
		return 0
	case containsAny(salary, s.Vocab.PromotionalSalaryCues):
		*riskFactors = append(*riskFactors, "Vague or promotional salary language")
		return 0.25
	case len(salary) < 5:
		*riskFactors = append(*riskFactors, "Missing or vague salary information")
		return 0.15
	}
	return 0
}

// digitRuns extracts every maximal run of consecutive digits as an integer.
func digitRuns(text string) []int {
	var runs []int
	current := 0
	inRun := false
	for _, r := range text {
		if r >= '0' && r <= '9' {
			// Cap absurd runs; anything this large is already past every band.
			if current < 1_000_000_000 {
				current = current*10 + int(r-'0')
			}
			inRun = true
			continue
		}
		if inRun {
			runs = append(runs, current)
			current = 0
			inRun = false
		}
	}
	if inRun {
		runs = append(runs, current)
	}
	return runs
}

// containsAny reports whether any of the terms appears in text.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// clamp bounds a score to [0,1].
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

package scoring

import "strings"

// Vocabulary holds the fixed term lists the extractors match against.
// The lists are part of the scoring contract; they are loaded once and
// passed into the scorer so the extraction functions stay pure.
type Vocabulary struct {
	SuspiciousKeywords     []string
	HighRiskPhrases        []string
	LegitimateIndicators   []string
	SuspiciousCompanyTerms []string
	GenericCompanyTerms    []string
	HighRiskIndustries     []string
	VagueFunctions         []string
	PromotionalSalaryCues  []string
}

// DefaultVocabulary returns the built-in term lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		SuspiciousKeywords: []string{
			"make money fast", "work from home", "no experience needed", "easy money",
			"get rich quick", "guaranteed income", "earn $", "make $", "high pay",
			"immediate start", "no skills required", "flexible hours", "part time",
			"full time", "urgent", "apply now", "limited time", "exclusive opportunity",
			"quick cash", "fast money", "easy work", "simple job", "no interview",
		},
		HighRiskPhrases: []string{
			"make $", "earn up to", "guaranteed", "no experience", "work from home",
			"flexible schedule", "immediate hiring", "apply today", "limited positions",
			"quick money", "easy cash", "high income", "fast pay", "instant money",
		},
		LegitimateIndicators: []string{
			"bachelor", "degree", "experience required", "qualifications", "skills",
			"responsibilities", "requirements", "company benefits", "equal opportunity",
			"professional", "certification", "training", "career development",
		},
		SuspiciousCompanyTerms: []string{
			"quick", "easy", "fast", "instant", "immediate", "guaranteed",
			"make money", "earn cash", "work from home", "no experience",
			"flexible", "simple", "effortless",
		},
		GenericCompanyTerms: []string{
			"llc", "inc", "corp", "solutions", "global", "international", "services", "group",
		},
		HighRiskIndustries: []string{
			"marketing", "sales", "customer service", "data entry", "general",
			"administrative", "clerical", "other", "various",
		},
		VagueFunctions: []string{
			"other", "general", "various", "multiple", "admin",
		},
		PromotionalSalaryCues: []string{
			"up to", "earn", "make",
		},
	}
}

// countMatches returns how many distinct terms appear at least once in text
// as a substring. Text is expected to be lower-cased already.
func countMatches(text string, terms []string) int {
	count := 0
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(text, term) {
			count++
		}
	}
	return count
}

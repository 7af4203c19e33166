// Package validation checks batches of job records against the required-field
// contract and flags data-quality issues before scoring.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/fraudguard/internal/types"
)

// RequiredColumns is the fixed set of columns a batch must carry.
var RequiredColumns = []string{
	"salary_range",
	"company_profile",
	"description",
	"requirements",
	"benefits",
	"telecommuting",
	"has_company_logo",
	"has_questions",
	"employment_type",
	"required_experience",
	"required_education",
	"industry",
	"function",
}

// ValidEmploymentTypes are the accepted employment_type values (case-insensitive).
var ValidEmploymentTypes = []string{
	"full-time", "part-time", "contract", "temporary", "internship", "other",
}

// Quality-warning thresholds as fractions of total rows.
const (
	emptyDescriptionRatio = 0.1
	missingSalaryRatio    = 0.2
)

// Validate checks a batch of records. Errors halt processing; warnings are
// advisory and never block scoring. Missing-column detection inspects the
// header set of the first record only.
func Validate(records []types.JobRecord) types.ValidationResult {
	var errors, warnings []string

	if len(records) == 0 {
		errors = append(errors, "CSV file is empty")
		return types.ValidationResult{IsValid: false, Errors: errors, Warnings: warnings}
	}

	var missingColumns []string
	for _, column := range RequiredColumns {
		if !records[0].HasColumn(column) {
			missingColumns = append(missingColumns, column)
		}
	}
	if len(missingColumns) > 0 {
		errors = append(errors, fmt.Sprintf("Missing required columns: %s", strings.Join(missingColumns, ", ")))
	}

	emptyDescriptions := 0
	missingSalaries := 0
	invalidEmploymentTypes := 0
	for _, record := range records {
		if len(record.Description) < 10 {
			emptyDescriptions++
		}
		if len(record.SalaryRange) < 3 {
			missingSalaries++
		}
		if record.EmploymentType != "" && !isValidEmploymentType(record.EmploymentType) {
			invalidEmploymentTypes++
		}
	}

	total := float64(len(records))
	if float64(emptyDescriptions) > total*emptyDescriptionRatio {
		warnings = append(warnings, fmt.Sprintf("%d rows have very short or missing descriptions", emptyDescriptions))
	}
	if float64(missingSalaries) > total*missingSalaryRatio {
		warnings = append(warnings, fmt.Sprintf("%d rows have missing salary information", missingSalaries))
	}
	if invalidEmploymentTypes > 0 {
		warnings = append(warnings, fmt.Sprintf("%d rows have invalid employment types", invalidEmploymentTypes))
	}

	return types.ValidationResult{
		IsValid:  len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

func isValidEmploymentType(value string) bool {
	lowered := strings.ToLower(value)
	for _, valid := range ValidEmploymentTypes {
		if lowered == valid {
			return true
		}
	}
	return false
}

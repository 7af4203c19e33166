// Package ingestion converts external inputs (CSV files, URLs, API payloads)
// into normalized job records.
package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/fraudguard/internal/types"
)

// booleanColumns are coerced to strict booleans at the ingestion boundary so
// the extractors never re-check string representations.
var booleanColumns = map[string]bool{
	"telecommuting":    true,
	"has_company_logo": true,
	"has_questions":    true,
	"fraudulent":       true,
}

// ParseCSV reads a delimited file with a header row into job records.
// Header matching is case-insensitive and whitespace-trimmed; boolean columns
// parse "true" or "1" (case-insensitive) as true and everything else as
// false; all other values are trimmed strings. Unknown columns are ignored.
// The normalized header set is recorded on every record for the validator.
func ParseCSV(r io.Reader) ([]types.JobRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("CSV parsing errors: %w", err)
	}

	columns := make([]string, len(header))
	columnSet := make(map[string]bool, len(header))
	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		columns[i] = normalized
		if normalized != "" {
			columnSet[normalized] = true
		}
	}

	var records []types.JobRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV parsing errors: %w", err)
		}
		if isEmptyRow(row) {
			continue
		}

		record := types.JobRecord{Columns: columnSet}
		for i, value := range row {
			if i >= len(columns) {
				break
			}
			setField(&record, columns[i], value)
		}
		records = append(records, record)
	}

	return records, nil
}

func isEmptyRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

// parseBool implements the boolean-column contract: "true" or "1"
// (case-insensitive) is true, everything else is false.
func parseBool(value string) bool {
	trimmed := strings.TrimSpace(value)
	return strings.EqualFold(trimmed, "true") || trimmed == "1"
}

func setField(record *types.JobRecord, column, value string) {
	if booleanColumns[column] {
		switch column {
		case "telecommuting":
			record.Telecommuting = parseBool(value)
		case "has_company_logo":
			record.HasCompanyLogo = parseBool(value)
		case "has_questions":
			record.HasQuestions = parseBool(value)
		case "fraudulent":
			record.Fraudulent = parseBool(value)
		}
		return
	}

	trimmed := strings.TrimSpace(value)
	switch column {
	case "job_id":
		record.JobID = trimmed
	case "title":
		record.Title = trimmed
	case "description":
		record.Description = trimmed
	case "company_profile":
		record.CompanyProfile = trimmed
	case "salary_range":
		record.SalaryRange = trimmed
	case "requirements":
		record.Requirements = trimmed
	case "benefits":
		record.Benefits = trimmed
	case "employment_type":
		record.EmploymentType = trimmed
	case "required_experience":
		record.RequiredExperience = trimmed
	case "required_education":
		record.RequiredEducation = trimmed
	case "industry":
		record.Industry = trimmed
	case "function":
		record.Function = trimmed
	case "location":
		record.Location = trimmed
	case "department":
		record.Department = trimmed
	}
}

// Clean normalizes the text fields of parsed records: trims whitespace and
// lower-cases employment_type, defaulting it to full-time when absent.
func Clean(records []types.JobRecord) []types.JobRecord {
	cleaned := make([]types.JobRecord, len(records))
	for i, record := range records {
		record.Description = strings.TrimSpace(record.Description)
		record.CompanyProfile = strings.TrimSpace(record.CompanyProfile)
		record.Requirements = strings.TrimSpace(record.Requirements)
		record.Benefits = strings.TrimSpace(record.Benefits)
		record.SalaryRange = strings.TrimSpace(record.SalaryRange)
		record.Industry = strings.TrimSpace(record.Industry)
		record.Function = strings.TrimSpace(record.Function)

		employmentType := strings.ToLower(strings.TrimSpace(record.EmploymentType))
		if employmentType == "" {
			employmentType = "full-time"
		}
		record.EmploymentType = employmentType

		cleaned[i] = record
	}
	return cleaned
}

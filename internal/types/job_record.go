// Package types provides type definitions for structured data used throughout the fraud detection engine.
package types

// JobRecord represents a single job posting as ingested from a CSV file or
// API payload. Every field is optional: an absent column and an empty value
// are both treated as "missing" by the scoring rules, and neither is an error.
type JobRecord struct {
	JobID              string `json:"job_id,omitempty"`
	Title              string `json:"title,omitempty"`
	Description        string `json:"description,omitempty"`
	CompanyProfile     string `json:"company_profile,omitempty"`
	SalaryRange        string `json:"salary_range,omitempty"`
	Requirements       string `json:"requirements,omitempty"`
	Benefits           string `json:"benefits,omitempty"`
	Telecommuting      bool   `json:"telecommuting,omitempty"`
	HasCompanyLogo     bool   `json:"has_company_logo,omitempty"`
	HasQuestions       bool   `json:"has_questions,omitempty"`
	EmploymentType     string `json:"employment_type,omitempty"`
	RequiredExperience string `json:"required_experience,omitempty"`
	RequiredEducation  string `json:"required_education,omitempty"`
	Industry           string `json:"industry,omitempty"`
	Function           string `json:"function,omitempty"`
	Location           string `json:"location,omitempty"`
	Department         string `json:"department,omitempty"`

	// Fraudulent is the ground-truth label carried through for reporting
	// context only. The scorer never reads it.
	Fraudulent bool `json:"fraudulent,omitempty"`

	// Columns records the header set the record was parsed from, keyed by
	// normalized column name. It is populated by the ingestion layer and
	// consulted only by the schema validator; a nil map means the record was
	// constructed in code and structurally carries every field.
	Columns map[string]bool `json:"-"`
}

// HasColumn reports whether the named column was present in the input the
// record was parsed from. Records built directly (nil Columns) report true
// for every column.
func (r *JobRecord) HasColumn(name string) bool {
	if r.Columns == nil {
		return true
	}
	return r.Columns[name]
}

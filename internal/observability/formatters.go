// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/fraudguard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintValidation outputs validation errors and warnings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(result *types.ValidationResult) {
	if result == nil {
		return
	}

	if result.IsValid && len(result.Warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ BATCH VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for _, err := range result.Errors {
		sb.WriteString(fmt.Sprintf("✗ %s\n", err))
	}
	for _, warning := range result.Warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", warning))
	}

	title := "VALIDATION WARNINGS"
	if !result.IsValid {
		title = "VALIDATION ERRORS"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPrediction outputs a human-readable summary of one prediction.
func (p *Printer) PrintPrediction(result *types.PredictionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Risk Score: %.3f (%s)\n", result.RiskScore, result.RiskLevel))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.Confidence))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Text:       %.2f\n", result.FeatureScores.TextAnalysis))
	sb.WriteString(fmt.Sprintf("Structural: %.2f\n", result.FeatureScores.StructuralFeatures))
	sb.WriteString(fmt.Sprintf("Company:    %.2f\n", result.FeatureScores.CompanyVerification))

	if len(result.RiskFactors) > 0 {
		sb.WriteString("\nRisk Factors:\n")
		count := min(len(result.RiskFactors), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.RiskFactors[i]))
		}
		if len(result.RiskFactors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.RiskFactors)-maxItemsToShow))
		}
	}

	if len(result.PositiveFactors) > 0 {
		sb.WriteString("\nPositive Factors:\n")
		count := min(len(result.PositiveFactors), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.PositiveFactors[i]))
		}
		if len(result.PositiveFactors) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.PositiveFactors)-3))
		}
	}

	p.printBox("PREDICTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the batch report summary, the top suspicious postings
// and the leading risk factors.
func (p *Printer) PrintReport(report *types.BatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Processed:  %d\n", report.Summary.TotalProcessed))
	sb.WriteString(fmt.Sprintf("Fraudulent: %d\n", report.Summary.Fraudulent))
	sb.WriteString(fmt.Sprintf("Legitimate: %d\n", report.Summary.Legitimate))
	sb.WriteString(fmt.Sprintf("Avg Risk:   %.3f\n", report.Summary.AverageRiskScore))
	sb.WriteString(fmt.Sprintf("Elapsed:    %dms\n", report.Summary.ProcessingTimeMs))

	if len(report.TopSuspicious) > 0 {
		sb.WriteString("\nTop Suspicious:\n")
		count := min(len(report.TopSuspicious), maxItemsToShow)
		for i := 0; i < count; i++ {
			record := report.TopSuspicious[i]
			title := record.Record.Title
			if title == "" {
				title = "(untitled)"
			}
			if len(title) > 30 {
				title = title[:27] + "..."
			}
			sb.WriteString(fmt.Sprintf("#%d  %.3f  %s\n", i+1, record.Prediction.RiskScore, title))
		}
		if len(report.TopSuspicious) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.TopSuspicious)-maxItemsToShow))
		}
	}

	if len(report.CommonRiskFactors) > 0 {
		sb.WriteString("\nCommon Risk Factors:\n")
		count := min(len(report.CommonRiskFactors), maxItemsToShow)
		for i := 0; i < count; i++ {
			factor := report.CommonRiskFactors[i]
			name := factor.Factor
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("%3d× %s\n", factor.Count, name))
		}
	}

	p.printBox("BATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

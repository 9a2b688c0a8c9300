// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-insight/internal/analysis"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQuickScore outputs the pre-filter score and whether it clears the gate.
func (p *Printer) PrintQuickScore(score, threshold int) {
	verdict := "PASS"
	if score < threshold {
		verdict = "REJECT"
	}
	content := fmt.Sprintf("Quick score: %d / 100\nGate (>= %d): %s", score, threshold, verdict)
	p.printBox("PRE-FILTER", content)
}

// PrintAnalysis outputs a human-readable summary of the final analysis.
func (p *Printer) PrintAnalysis(a *analysis.ResumeAnalysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %d / %d\n", a.OverallScore, a.MaxOverallScore))
	sb.WriteString(fmt.Sprintf("ATS:      %d / 10\n", a.KeyFindings.ATSCompatibility))
	sb.WriteString(fmt.Sprintf("Match:    %d / 10\n", a.JobAlignment.MatchScore))
	sb.WriteString("\n")

	if len(a.Sections) > 0 {
		sb.WriteString("Sections:\n")
		count := min(len(a.Sections), maxItemsToShow)
		for i := 0; i < count; i++ {
			section := a.Sections[i]
			sb.WriteString(fmt.Sprintf("  %-16s %2d/10\n", section.Name, section.Score))
		}
		if len(a.Sections) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(a.Sections)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(a.KeyFindings.MissingSkills) > 0 {
		sb.WriteString("Missing skills:\n")
		count := min(len(a.KeyFindings.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", a.KeyFindings.MissingSkills[i]))
		}
		if len(a.KeyFindings.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(a.KeyFindings.MissingSkills)-maxItemsToShow))
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the job-alignment recommendations.
func (p *Printer) PrintRecommendations(a *analysis.ResumeAnalysis) {
	if a == nil || len(a.JobAlignment.Recommendations) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range a.JobAlignment.Recommendations {
		if len(rec) > 50 {
			rec = rec[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

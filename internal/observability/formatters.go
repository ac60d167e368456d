// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
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

// PrintJobRequirement outputs a human-readable summary of the acquired job.
func (p *Printer) PrintJobRequirement(job *types.JobRequirement) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	sb.WriteString("\n")

	if len(job.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		count := min(len(job.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Requirements[i]))
		}
		if len(job.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Requirements)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(job.KeySkills) > 0 {
		sb.WriteString(fmt.Sprintf("Key Skills: %s\n", strings.Join(job.KeySkills, ", ")))
	}

	p.printBox("JOB REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidate outputs a summary of the extracted candidate record.
func (p *Printer) PrintCandidate(candidate *types.CandidateRecord) {
	if candidate == nil {
		return
	}

	var sb strings.Builder

	if candidate.Contact.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:   %s\n", candidate.Contact.Name))
	}
	if candidate.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", candidate.Contact.Email))
	}
	if candidate.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", candidate.Contact.Phone))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience entries:  %d\n", len(candidate.WorkExperience)))
	sb.WriteString(fmt.Sprintf("Education entries:   %d\n", len(candidate.Education)))
	sb.WriteString(fmt.Sprintf("Projects:            %d\n", len(candidate.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications:      %d\n", len(candidate.Certifications)))

	if len(candidate.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(candidate.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", candidate.Skills[i]))
		}
		if len(candidate.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(candidate.Skills)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED CANDIDATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreBreakdown outputs the per-dimension match scores.
func (p *Printer) PrintScoreBreakdown(score *types.ScoreBreakdown) {
	if score == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skills:      %5.1f\n", score.SkillScore))
	sb.WriteString(fmt.Sprintf("Experience:  %5.1f\n", score.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Education:   %5.1f\n", score.EducationScore))
	sb.WriteString(fmt.Sprintf("Projects:    %5.1f\n", score.ProjectScore))
	sb.WriteString(fmt.Sprintf("Keywords:    %5.1f\n", score.KeywordScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Final:       %5.1f / 100", score.FinalScore))

	p.printBox("MATCH SCORE", sb.String())
}

// PrintSuggestions outputs the generated suggestion lists.
func (p *Printer) PrintSuggestions(suggestions *types.SuggestionSet) {
	if suggestions == nil {
		return
	}

	var sb strings.Builder

	if len(suggestions.ContentSuggestions) > 0 {
		sb.WriteString("Content:\n")
		for i, s := range suggestions.ContentSuggestions {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s))
		}
		sb.WriteString("\n")
	}
	if len(suggestions.ATSSuggestions) > 0 {
		sb.WriteString("ATS:\n")
		for i, s := range suggestions.ATSSuggestions {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s))
		}
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

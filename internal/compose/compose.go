// Package compose assembles the optimized plain-text resume document from
// the outputs of extraction, scoring, and suggestion generation.
package compose

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const sectionRule = "--------------------------------------------------"

// Document renders the final plain-text resume. It applies no decision
// logic beyond ordering and skipping empty fields; every block is emitted
// verbatim from its input.
func Document(job types.JobRequirement, candidate types.CandidateRecord, score types.ScoreBreakdown, suggestions types.SuggestionSet) string {
	var b strings.Builder

	b.WriteString("=== Optimized Resume ===\n")
	fmt.Fprintf(&b, "Target Position: %s\n", orDefault(job.Title, "Unknown Position"))
	fmt.Fprintf(&b, "Target Company: %s\n", orDefault(job.Company, "Unknown Company"))
	fmt.Fprintf(&b, "Match Score: %.1f%%\n", score.FinalScore)
	b.WriteString(sectionRule + "\n")

	writeContact(&b, candidate.Contact)
	writeSkills(&b, candidate.Skills, job.KeySkills)
	writeExperience(&b, candidate.WorkExperience)
	writeEducation(&b, candidate.Education)
	writeProjects(&b, candidate.Projects)

	b.WriteString(sectionRule + "\n")
	writeNumbered(&b, "[Optimization Suggestions]", suggestions.ContentSuggestions)
	b.WriteString("\n")
	writeNumbered(&b, "[ATS Suggestions]", suggestions.ATSSuggestions)

	return b.String()
}

func writeContact(b *strings.Builder, contact types.ContactInfo) {
	if contact == (types.ContactInfo{}) {
		return
	}
	b.WriteString("[Contact Information]\n")
	writeField(b, "Name", contact.Name)
	writeField(b, "Email", contact.Email)
	writeField(b, "Phone", contact.Phone)
	writeField(b, "LinkedIn", contact.LinkedIn)
	writeField(b, "GitHub", contact.GitHub)
	b.WriteString("\n")
}

// writeSkills emits the union of candidate skills and required skills. A
// required skill is appended only when it is not already present verbatim;
// near-duplicates ("Python" vs "Python 3") are kept on purpose so no
// required keyword is ever dropped.
func writeSkills(b *strings.Builder, skills, required []string) {
	merged := make([]string, len(skills))
	copy(merged, skills)
	for _, skill := range required {
		present := false
		for _, have := range merged {
			if have == skill {
				present = true
				break
			}
		}
		if !present {
			merged = append(merged, skill)
		}
	}
	if len(merged) == 0 {
		return
	}
	b.WriteString("[Core Skills]\n")
	b.WriteString("• " + strings.Join(merged, ", ") + "\n\n")
}

func writeExperience(b *strings.Builder, entries []types.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("[Work Experience]\n")
	for _, exp := range entries {
		fmt.Fprintf(b, "%s | %s\n", orDefault(exp.Company, "Unknown Company"), orDefault(exp.Title, "Unknown Position"))
		writeField(b, "Duration", exp.Duration)
		writeField(b, "Description", exp.Description)
		b.WriteString("\n")
	}
}

func writeEducation(b *strings.Builder, entries []types.EducationEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("[Education]\n")
	for _, edu := range entries {
		fmt.Fprintf(b, "%s | %s\n", orDefault(edu.Institution, "Unknown Institution"), orDefault(edu.Degree, "Unknown Degree"))
		writeField(b, "Major", edu.Major)
		b.WriteString("\n")
	}
}

func writeProjects(b *strings.Builder, entries []types.ProjectEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("[Projects]\n")
	for _, project := range entries {
		fmt.Fprintf(b, "Project Name: %s\n", orDefault(project.Name, "Unknown Project"))
		writeField(b, "Project Description", project.Description)
		b.WriteString("\n")
	}
}

func writeNumbered(b *strings.Builder, heading string, items []string) {
	b.WriteString(heading + "\n")
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

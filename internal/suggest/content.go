// Package suggest derives resume improvement suggestions from a job
// requirement and an extracted candidate record.
package suggest

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-optimizer/internal/match"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// thinExperienceRunes is the combined description length below which
// experience is flagged as too thin to match against requirements.
const thinExperienceRunes = 200

// Generate produces the content and ATS suggestion lists for a candidate
// against a job. The content list is never empty; checks run in a fixed
// order so output is stable for identical inputs.
func Generate(job types.JobRequirement, candidate types.CandidateRecord) types.SuggestionSet {
	return types.SuggestionSet{
		ContentSuggestions: contentSuggestions(job, candidate),
		ATSSuggestions:     atsSuggestions(candidate),
	}
}

func contentSuggestions(job types.JobRequirement, candidate types.CandidateRecord) []string {
	var suggestions []string

	if missing := match.MissingSkills(job.KeySkills, candidate.Skills); len(missing) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Consider adding these skills to your skills section: %s", strings.Join(missing, ", ")))
	}

	switch {
	case len(candidate.WorkExperience) == 0 && len(job.Requirements) > 0:
		suggestions = append(suggestions,
			"Describe your work experience in detail to address the position's requirements")
	case len(candidate.WorkExperience) > 0 && len(job.Requirements) > 0:
		total := 0
		for _, exp := range candidate.WorkExperience {
			total += utf8.RuneCountInString(exp.Description)
		}
		if total < thinExperienceRunes {
			suggestions = append(suggestions,
				"Enrich your work experience descriptions with concrete responsibilities and outcomes")
		}
	}

	if match.EducationRequired(job.Description) && len(candidate.Education) == 0 {
		suggestions = append(suggestions,
			"The job description includes education requirements; add your education background")
	}

	if match.ProjectRequired(job.Description) && len(candidate.Projects) == 0 {
		suggestions = append(suggestions,
			"The job description mentions project experience; add your project history")
	}

	title := strings.ToLower(strings.TrimSpace(job.Title))
	if title != "" && !strings.Contains(strings.ToLower(candidate.Text), title) {
		suggestions = append(suggestions,
			fmt.Sprintf("Include the target position keyword in your resume: %q", job.Title))
	}

	// Score-band commentary only makes sense when the job expressed some
	// requirement; an empty job should not read as a poor match.
	if jobHasSignal(job) {
		final := match.Score(job, candidate).FinalScore
		if final < 50 {
			suggestions = append(suggestions,
				"Your resume is a low match for this position; a full rewrite is recommended")
		} else if final < 70 {
			suggestions = append(suggestions,
				"Your resume is a moderate match for this position; targeted edits are recommended")
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Your resume is a strong match for this position; no major changes needed")
	}
	return suggestions
}

func jobHasSignal(job types.JobRequirement) bool {
	return len(job.KeySkills) > 0 ||
		len(job.Requirements) > 0 ||
		strings.TrimSpace(job.Description) != ""
}

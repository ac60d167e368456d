// Package match scores a structured candidate record against a job
// requirement across five weighted dimensions.
package match

import (
	"math"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Dimension weights. They sum to 1.00, but the final score divides by the
// weight of contributing dimensions only, so the formula stays correct if
// the weights are ever retuned.
const (
	SkillWeight      = 0.35
	ExperienceWeight = 0.30
	EducationWeight  = 0.15
	ProjectWeight    = 0.10
	KeywordWeight    = 0.10
)

// educationKeywords mark a job description as carrying an education
// requirement.
var educationKeywords = []string{
	"学历", "学位", "教育", "毕业", "学历要求",
	"degree", "education", "bachelor", "master",
}

// projectKeywords mark a job description as expecting project experience.
var projectKeywords = []string{"项目", "project", "experience"}

// Score compares a candidate against a job requirement. A dimension only
// counts toward the weighted average when the job expresses a matching
// requirement; absent requirements neither penalize nor inflate the
// result. With no contributing dimension at all the final score is 0.
func Score(job types.JobRequirement, candidate types.CandidateRecord) types.ScoreBreakdown {
	skillRatio, skillContributes := skillRatio(job.KeySkills, candidate.Skills)
	expRatio, expContributes := experienceRatio(job.Requirements, candidate.WorkExperience)
	eduRatio, eduContributes := educationRatio(job.Description, candidate.Education)
	projRatio, projContributes := projectRatio(job.Description, candidate.Projects)
	kwRatio, kwContributes := keywordRatio(job.Description, candidate.Text)

	var weighted, totalWeight float64
	accumulate := func(ratio float64, contributes bool, weight float64) {
		if !contributes {
			return
		}
		weighted += ratio * weight
		totalWeight += weight
	}
	accumulate(skillRatio, skillContributes, SkillWeight)
	accumulate(expRatio, expContributes, ExperienceWeight)
	accumulate(eduRatio, eduContributes, EducationWeight)
	accumulate(projRatio, projContributes, ProjectWeight)
	accumulate(kwRatio, kwContributes, KeywordWeight)

	var final float64
	if totalWeight > 0 {
		final = math.Min(100.0, weighted/totalWeight*100)
	}

	return types.ScoreBreakdown{
		SkillScore:      round1(skillRatio * 100),
		ExperienceScore: round1(expRatio * 100),
		EducationScore:  round1(eduRatio * 100),
		ProjectScore:    round1(projRatio * 100),
		KeywordScore:    round1(kwRatio * 100),
		FinalScore:      round1(math.Max(0, final)),
	}
}

// EducationRequired reports whether the job description implies an
// education requirement.
func EducationRequired(description string) bool {
	return containsAnyFold(description, educationKeywords)
}

// ProjectRequired reports whether the job description implies a project
// experience requirement.
func ProjectRequired(description string) bool {
	return containsAnyFold(description, projectKeywords)
}

func skillRatio(required, skills []string) (float64, bool) {
	if len(required) == 0 {
		return 1.0, false
	}
	matched := 0
	for _, skill := range required {
		if skillMatched(skill, skills) {
			matched++
		}
	}
	return float64(matched) / float64(len(required)), true
}

// experienceRatio checks each requirement for a case-insensitive substring
// hit in the concatenated company/title/description text of all entries.
func experienceRatio(requirements []string, experience []types.ExperienceEntry) (float64, bool) {
	if len(requirements) == 0 {
		return 1.0, false
	}

	parts := make([]string, 0, len(experience))
	for _, exp := range experience {
		parts = append(parts, exp.Company+" "+exp.Title+" "+exp.Description)
	}
	combined := strings.ToLower(strings.Join(parts, " "))

	matched := 0
	for _, req := range requirements {
		if strings.Contains(combined, strings.ToLower(req)) {
			matched++
		}
	}
	return float64(matched) / float64(len(requirements)), true
}

// educationRatio is a binary presence check: full credit for any education
// entry once the description asks for one.
func educationRatio(description string, education []types.EducationEntry) (float64, bool) {
	if !EducationRequired(description) {
		return 1.0, false
	}
	if len(education) > 0 {
		return 1.0, true
	}
	return 0.0, true
}

func projectRatio(description string, projects []types.ProjectEntry) (float64, bool) {
	if !ProjectRequired(description) {
		return 1.0, false
	}
	if len(projects) > 0 {
		return 1.0, true
	}
	return 0.0, true
}

func keywordRatio(description, resumeText string) (float64, bool) {
	keywords := JobKeywords(description)
	if len(keywords) == 0 {
		return 1.0, false
	}
	lowered := strings.ToLower(resumeText)
	matched := 0
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords)), true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

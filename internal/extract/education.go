package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-optimizer/internal/segment"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const unknownField = "unknown"

var institutionTypeRe = regexp.MustCompile(`(?i)大学|学院|university|college|school`)

// Education extracts education entries from the education section of the text.
// Extraction stops at the first line matching an institution pattern, so at
// most one entry is returned; major and graduation year stay placeholders.
func Education(text string) []types.EducationEntry {
	span := segment.Locate(text, segment.EducationSet,
		[]segment.KeywordSet{segment.SkillsSet, segment.ExperienceSet, segment.ProjectsSet})
	section := span.Text

	lines := strings.Split(section, "\n")

	// Institution-type words first, well-known institution names second; the
	// first cluster that produces a match ends the search.
	matchers := []func(string) bool{
		institutionTypeRe.MatchString,
		func(line string) bool { return containsAny(line, knownInstitutions) },
	}

	for _, matches := range matchers {
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if utf8.RuneCountInString(trimmed) <= 4 || !matches(trimmed) {
				continue
			}
			return []types.EducationEntry{{
				Institution:    trimmed,
				Degree:         degreeOf(trimmed),
				Major:          unknownField,
				GraduationYear: unknownField,
			}}
		}
	}

	return []types.EducationEntry{}
}

// degreeOf returns the first degree token present in the line, or "unknown".
func degreeOf(line string) string {
	for _, token := range degreeTokens {
		if strings.Contains(line, token) {
			return token
		}
	}
	return unknownField
}

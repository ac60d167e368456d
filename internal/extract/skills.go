package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-optimizer/internal/segment"
)

var (
	bulletItemRe = regexp.MustCompile(`[•\-\*\+]\s*([^\n]+)`)
	skillSplitRe = regexp.MustCompile(`[;、,，/]`)
)

// Skills extracts the candidate's skill list. The fixed vocabulary is matched
// against the full text (skills are often mentioned outside a dedicated
// section); bullet items and delimiter-separated tokens are then harvested
// from the segmented skills section. The result is deduplicated in first-seen
// order so repeated extraction is byte-identical.
func Skills(text string) []string {
	found := []string{}
	seen := map[string]struct{}{}
	add := func(skill string) {
		if skill == "" {
			return
		}
		if _, ok := seen[skill]; ok {
			return
		}
		seen[skill] = struct{}{}
		found = append(found, skill)
	}

	lowerText := strings.ToLower(text)
	for _, skill := range commonSkills {
		if strings.Contains(lowerText, strings.ToLower(skill)) {
			add(skill)
		}
	}

	span := segment.Locate(text, segment.SkillsSet, []segment.KeywordSet{
		segment.ExperienceSet, segment.EducationSet, segment.ProjectsSet, segment.CertificationsSet,
	})
	// Bullet and delimiter harvesting only applies to a real skills section;
	// running against a fallback span would promote arbitrary list items from
	// the whole document into skills.
	if span.Fallback {
		return found
	}
	section := span.Text

	for _, m := range bulletItemRe.FindAllStringSubmatch(section, -1) {
		item := strings.TrimSpace(m[1])
		if isSkillToken(item) {
			add(item)
		}
	}

	for _, line := range strings.Split(section, "\n") {
		if !skillSplitRe.MatchString(line) {
			continue
		}
		for _, token := range skillSplitRe.Split(line, -1) {
			token = strings.TrimSpace(token)
			if isSkillToken(token) {
				add(token)
			}
		}
	}

	return found
}

// isSkillToken filters out short tokens and stopwords.
func isSkillToken(token string) bool {
	if utf8.RuneCountInString(token) <= 1 {
		return false
	}
	if _, ok := chineseStopwords[token]; ok {
		return false
	}
	if _, ok := englishStopwords[strings.ToLower(token)]; ok {
		return false
	}
	return true
}

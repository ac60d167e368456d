package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-optimizer/internal/segment"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// unknownCompany and unknownTitle are the placeholder values used when a
	// heuristic yields nothing. Title extraction is not implemented at all;
	// every entry carries the placeholder.
	unknownCompany  = "unknown company"
	unknownTitle    = "unknown"
	unknownDuration = "unknown"

	// contextWindow is how many bytes before a date-range match are searched
	// for the line carrying company information.
	contextWindow = 200

	// maxFallbackEntries caps the company-suffix fallback scan.
	maxFallbackEntries = 5
)

var (
	// Date-range forms recognized as experience anchors: "2019-2022",
	// "2019 - present" / "2019至今", and "2019年3月-2021年7月".
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d{4}(?:\s*[-—–~]\s*(?:\d{4}|至今|present|current)|\s*至今)`),
		regexp.MustCompile(`\d{4}\s*年\s*\d{1,2}\s*月\s*[-—–~]\s*\d{4}\s*年\s*\d{1,2}\s*月`),
	}

	// companyPrefixRe grabs the leading non-digit run of a matched line as the
	// company name.
	companyPrefixRe = regexp.MustCompile(`^[^\d\n]{3,30}`)
)

// Experience extracts work history entries from the experience section of the
// text. Date-range tokens anchor the primary pass; when none are found, lines
// carrying an organization-type suffix are used as a degraded fallback.
func Experience(text string) []types.ExperienceEntry {
	span := segment.Locate(text, segment.ExperienceSet,
		[]segment.KeywordSet{segment.EducationSet, segment.SkillsSet})
	section := span.Text

	entries := []types.ExperienceEntry{}

	for _, pattern := range datePatterns {
		for _, loc := range pattern.FindAllStringIndex(section, -1) {
			matched := section[loc[0]:loc[1]]

			start := loc[0] - contextWindow
			if start < 0 {
				start = 0
			}
			context := section[start:loc[1]]

			for _, line := range strings.Split(context, "\n") {
				trimmed := strings.TrimSpace(line)
				if !strings.Contains(line, matched) || utf8.RuneCountInString(trimmed) <= 5 {
					continue
				}

				company := strings.TrimSpace(companyPrefixRe.FindString(trimmed))
				if company == "" {
					company = unknownCompany
				}

				entries = append(entries, types.ExperienceEntry{
					Company:     company,
					Title:       unknownTitle,
					Duration:    matched,
					Description: trimmed,
				})
				break
			}
		}
	}

	if len(entries) > 0 {
		return entries
	}

	// Degraded mode: no date ranges anywhere; fall back to lines that end in
	// an organization-type word.
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !containsAny(trimmed, companySuffixes) {
			continue
		}
		entries = append(entries, types.ExperienceEntry{
			Company:     trimmed,
			Title:       unknownTitle,
			Duration:    unknownDuration,
			Description: trimmed,
		})
		if len(entries) == maxFallbackEntries {
			break
		}
	}

	return entries
}

// containsAny reports whether s contains any of the literals.
func containsAny(s string, literals []string) bool {
	for _, lit := range literals {
		if strings.Contains(s, lit) {
			return true
		}
	}
	return false
}

package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-optimizer/internal/segment"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// minCertificateLineRunes filters out lines too short to name a credential.
const minCertificateLineRunes = 5

// Certifications extracts certificate entries from the certifications
// section. A line qualifies when it mentions a certification keyword or a
// well-known certifying body; authority and date stay placeholders.
func Certifications(text string) []types.CertificateEntry {
	span := segment.Locate(text, segment.CertificationsSet, []segment.KeywordSet{
		segment.ExperienceSet, segment.EducationSet, segment.SkillsSet, segment.ProjectsSet,
	})
	if span.Fallback {
		return []types.CertificateEntry{}
	}

	certs := []types.CertificateEntry{}
	for _, line := range strings.Split(span.Text, "\n") {
		trimmed := strings.TrimSpace(line)
		if utf8.RuneCountInString(trimmed) <= minCertificateLineRunes {
			continue
		}
		if !containsAny(trimmed, certKeywords) && !containsAny(trimmed, certAuthorities) {
			continue
		}
		certs = append(certs, types.CertificateEntry{
			Name:      trimmed,
			Authority: unknownField,
			Date:      unknownField,
		})
	}

	return certs
}

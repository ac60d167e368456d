package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-optimizer/internal/types"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?@[A-Za-z0-9](?:[A-Za-z0-9.-]*[A-Za-z0-9])?\.[A-Za-z]{2,}\b`)

	// Phone patterns form an ordered cascade: the first pattern with any match
	// wins and later patterns are never consulted. Re-ordering changes output
	// for ambiguous inputs, so the order is part of the contract.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+?86[-\s]?)?1[3-9]\d{9}`),                                    // CN mobile
		regexp.MustCompile(`(?:\+?86[-\s]?)?\d{3,4}[-\s]?\d{7,8}`),                          // CN landline
		regexp.MustCompile(`(?:\+?1[-\s]?)?\(?[2-9]\d{2}\)?[-\s]?[2-9]\d{2}[-\s]?\d{4}`),    // North American
		regexp.MustCompile(`\+?\d{1,4}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),    // generic international
	}

	cjkNameRe   = regexp.MustCompile(`^\p{Han}{2,4}$`)
	latinNameRe = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]*\.?)?(?:\s+[A-Z][a-z]+){1,2}$`)

	// Loose fallback: a short line with no contact-ish characters that still
	// contains CJK or a capitalized Latin word.
	nonNameCharRe = regexp.MustCompile(`[@:0-9]`)
	nameContentRe = regexp.MustCompile(`\p{Han}|[A-Z][a-z]`)

	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9_-]+`)
)

// nameScanLines is how many leading lines are scanned by the strict name
// patterns; looseNameScanLines bounds the fallback heuristic.
const (
	nameScanLines      = 10
	looseNameScanLines = 5
)

// Contact extracts contact information from the full resume text. Every field
// is independently optional; a miss on one field never blocks the others.
func Contact(text string) types.ContactInfo {
	var info types.ContactInfo

	info.Email = emailRe.FindString(text)

	for _, pattern := range phonePatterns {
		if phone := pattern.FindString(text); phone != "" {
			info.Phone = strings.TrimSpace(phone)
			break
		}
	}

	info.Name = extractName(text)

	if m := linkedinRe.FindString(text); m != "" {
		info.LinkedIn = "https://www." + m
	}
	if m := githubRe.FindString(text); m != "" {
		info.GitHub = "https://" + m
	}

	return info
}

// extractName scans the first lines of the resume for a line that looks like a
// bare name: a 2-4 character CJK token or a capitalized Latin full name. When
// neither strict pattern matches, it falls back to the first short line free
// of "@", ":" and digits that still contains name-like characters.
func extractName(text string) string {
	lines := strings.Split(text, "\n")

	limit := min(len(lines), nameScanLines)
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if cjkNameRe.MatchString(line) || latinNameRe.MatchString(line) {
			return line
		}
	}

	limit = min(len(lines), looseNameScanLines)
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		length := utf8.RuneCountInString(line)
		if length < 2 || length > 30 {
			continue
		}
		if nonNameCharRe.MatchString(line) {
			continue
		}
		if nameContentRe.MatchString(line) {
			return line
		}
	}

	return ""
}

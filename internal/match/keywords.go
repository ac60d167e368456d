package match

import (
	"regexp"
	"strings"
)

// jobKeywordRe extracts alphabetic tokens of 3+ letters and CJK runs of
// 2-6 characters from a lowered job description.
var jobKeywordRe = regexp.MustCompile(`[a-zA-Z]{3,}|\p{Han}{2,6}`)

// stopwords are dropped from job-description keyword extraction. Mixed
// Chinese/English because postings routinely interleave both.
var stopwords = map[string]struct{}{
	"的": {}, "了": {}, "在": {}, "是": {}, "我": {},
	"有": {}, "和": {}, "或": {}, "但": {}, "也": {},
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "with": {},
	"by": {}, "from": {},
}

// JobKeywords tokenizes a job description into lowercase keywords with
// stopwords removed. Order follows first appearance; duplicates are kept
// so that repeated keywords weigh the ratio the same way every run.
func JobKeywords(description string) []string {
	raw := jobKeywordRe.FindAllString(strings.ToLower(description), -1)
	keywords := make([]string, 0, len(raw))
	for _, word := range raw {
		if _, stop := stopwords[word]; stop {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// skillMatched reports whether a required skill matches any candidate
// skill. Matching is bidirectional case-insensitive substring containment:
// "Python" matches candidate skill "Python 3" and vice versa.
func skillMatched(required string, skills []string) bool {
	req := strings.ToLower(required)
	for _, skill := range skills {
		have := strings.ToLower(skill)
		if strings.Contains(have, req) || strings.Contains(req, have) {
			return true
		}
	}
	return false
}

// MissingSkills returns the required skills with no bidirectional
// substring match among the candidate's skills, preserving the job's
// ordering.
func MissingSkills(required, skills []string) []string {
	missing := make([]string, 0, len(required))
	for _, skill := range required {
		if !skillMatched(skill, skills) {
			missing = append(missing, skill)
		}
	}
	return missing
}

// containsAnyFold reports whether text contains any of the needles,
// case-insensitively.
func containsAnyFold(text string, needles []string) bool {
	lowered := strings.ToLower(text)
	for _, needle := range needles {
		if strings.Contains(lowered, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

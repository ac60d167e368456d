package jobposting

import (
	"regexp"
	"strings"
)

// techSkills is the vocabulary scanned for in posting text to build the
// key-skills list. Order here fixes the order of the output.
var techSkills = []string{
	"Python", "Java", "JavaScript", "React", "Vue", "Angular",
	"Node.js", "Express", "Django", "Flask", "Spring",
	"SQL", "MongoDB", "PostgreSQL", "MySQL",
	"AWS", "Docker", "Kubernetes", "Git",
	"Machine Learning", "AI", "数据分析", "云计算",
	"TensorFlow", "PyTorch", "Hadoop", "Spark",
	"Linux", "Windows", "macOS", "CI/CD",
	"DevOps", "Agile", "Scrum", "JIRA",
}

// skillMatchers pairs each vocabulary entry with its matcher. Latin-script
// skills match on word boundaries; CJK entries use plain substring search
// because word boundaries are undefined there.
var skillMatchers = buildSkillMatchers()

type skillMatcher struct {
	skill string
	re    *regexp.Regexp // nil for substring matching
}

func buildSkillMatchers() []skillMatcher {
	matchers := make([]skillMatcher, 0, len(techSkills))
	for _, skill := range techSkills {
		m := skillMatcher{skill: skill}
		if isASCII(skill) {
			m.re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
		}
		matchers = append(matchers, m)
	}
	return matchers
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

// ScanSkills returns the vocabulary skills present in text, in vocabulary
// order.
func ScanSkills(text string) []string {
	lowered := strings.ToLower(text)
	var found []string
	for _, m := range skillMatchers {
		if m.re != nil {
			if m.re.MatchString(text) {
				found = append(found, m.skill)
			}
			continue
		}
		if strings.Contains(lowered, strings.ToLower(m.skill)) {
			found = append(found, m.skill)
		}
	}
	return found
}

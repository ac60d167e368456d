// Package segment locates keyword-anchored section boundaries inside raw
// resume text, producing named text spans for the field extractors.
package segment

import "strings"

// KeywordSet names one resume section and the synonym anchors that mark it.
// Keywords are checked in order; the first synonym present in the text wins,
// so the order encodes anchor priority.
type KeywordSet struct {
	Name     string
	Keywords []string
}

// Span is a contiguous byte range of the source text attributed to one
// section. Fallback is true when no anchor matched and the whole document was
// used instead; fallback spans from different sections may overlap.
type Span struct {
	Start    int
	End      int
	Text     string
	Fallback bool
}

// Standard section keyword sets. Synonyms cover both Chinese and English
// resume headings.
var (
	// ExperienceSet anchors the work experience section.
	ExperienceSet = KeywordSet{Name: "experience", Keywords: []string{
		"工作经历", "工作经验", "工作背景", "职业经历",
		"employment", "experience", "work history", "professional experience", "career history",
	}}
	// EducationSet anchors the education section.
	EducationSet = KeywordSet{Name: "education", Keywords: []string{
		"教育背景", "教育经历", "学历", "学位", "毕业院校",
		"education", "degree", "academic background", "university", "college",
	}}
	// SkillsSet anchors the skills section.
	SkillsSet = KeywordSet{Name: "skills", Keywords: []string{
		"技能", "技术", "能力", "专长",
		"skills", "technologies", "tools", "abilities", "expertise",
	}}
	// ProjectsSet anchors the projects section.
	ProjectsSet = KeywordSet{Name: "projects", Keywords: []string{
		"项目经验", "项目经历", "项目背景",
		"projects", "project experience",
	}}
	// CertificationsSet anchors the certifications section.
	CertificationsSet = KeywordSet{Name: "certifications", Keywords: []string{
		"证书", "认证",
		"certificates", "certifications", "credentials",
	}}
)

// DefaultSets returns the recognized section sets in canonical order.
func DefaultSets() []KeywordSet {
	return []KeywordSet{ExperienceSet, EducationSet, SkillsSet, ProjectsSet, CertificationsSet}
}

// Sections locates a span for every keyword set against the full text.
// Each section's end boundary is the nearest later anchor belonging to any
// other set in the list.
func Sections(text string, sets []KeywordSet) map[string]Span {
	result := make(map[string]Span, len(sets))
	for i, target := range sets {
		others := make([]KeywordSet, 0, len(sets)-1)
		for j, other := range sets {
			if j != i {
				others = append(others, other)
			}
		}
		result[target.Name] = Locate(text, target, others)
	}
	return result
}

// Locate finds the span for one target set. The section start is the first
// case-insensitive occurrence of any target synonym; the end is the nearest
// later occurrence of any synonym from the other sets, or the end of the text.
// When no target synonym is found the entire document is returned as a
// fallback span, preferring over-matching to missing data.
func Locate(text string, target KeywordSet, others []KeywordSet) Span {
	lower := strings.ToLower(text)

	start := -1
	for _, keyword := range target.Keywords {
		if pos := strings.Index(lower, strings.ToLower(keyword)); pos != -1 {
			start = pos
			break
		}
	}

	if start == -1 {
		return Span{Start: 0, End: len(text), Text: text, Fallback: true}
	}

	end := len(text)
	for _, other := range others {
		for _, keyword := range other.Keywords {
			pos := indexFrom(lower, strings.ToLower(keyword), start+1)
			if pos != -1 && pos < end {
				end = pos
			}
		}
	}

	return Span{Start: start, End: end, Text: text[start:end]}
}

// indexFrom returns the byte index of the first occurrence of substr in s at
// or after from, or -1.
func indexFrom(s, substr string, from int) int {
	if from >= len(s) {
		return -1
	}
	pos := strings.Index(s[from:], substr)
	if pos == -1 {
		return -1
	}
	return from + pos
}

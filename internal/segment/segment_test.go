package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate_AnchoredSection(t *testing.T) {
	text := "Jane Doe\n\nWork Experience\nAcme Corp 2019-2022\n\nEducation\nState University\n"

	span := Locate(text, ExperienceSet, []KeywordSet{EducationSet, SkillsSet})

	require.False(t, span.Fallback)
	assert.Contains(t, span.Text, "Acme Corp")
	assert.NotContains(t, span.Text, "State University")
}

func TestLocate_CaseInsensitiveAnchor(t *testing.T) {
	text := "header\nWORK HISTORY\nsome job\n"

	span := Locate(text, ExperienceSet, []KeywordSet{EducationSet})

	require.False(t, span.Fallback)
	assert.Contains(t, span.Text, "some job")
}

func TestLocate_FallbackUsesWholeDocument(t *testing.T) {
	text := "no recognizable headings here at all"

	span := Locate(text, ProjectsSet, []KeywordSet{ExperienceSet, EducationSet})

	assert.True(t, span.Fallback)
	assert.Equal(t, 0, span.Start)
	assert.Equal(t, len(text), span.End)
	assert.Equal(t, text, span.Text)
}

func TestLocate_EndIsNearestOtherAnchor(t *testing.T) {
	text := "工作经历\n某公司 2018-2020\n教育背景\n某大学\n技能\nPython\n"

	span := Locate(text, ExperienceSet, []KeywordSet{EducationSet, SkillsSet})

	require.False(t, span.Fallback)
	assert.Contains(t, span.Text, "某公司")
	assert.NotContains(t, span.Text, "某大学")
	assert.NotContains(t, span.Text, "Python")
}

func TestLocate_NoLaterAnchorRunsToEnd(t *testing.T) {
	text := "Education\nState University\nWork Experience\nAcme 2019-2021 built things"

	span := Locate(text, ExperienceSet, []KeywordSet{EducationSet, SkillsSet})

	require.False(t, span.Fallback)
	assert.Equal(t, len(text), span.End)
}

func TestSections_AllSetsLocated(t *testing.T) {
	text := "Work Experience\nAcme 2019-2021\nEducation\nState University\nSkills\nGo, SQL\n"

	spans := Sections(text, DefaultSets())

	require.Len(t, spans, 5)
	assert.False(t, spans["experience"].Fallback)
	assert.False(t, spans["education"].Fallback)
	assert.False(t, spans["skills"].Fallback)
	// Projects and certifications have no anchors and degrade to full text.
	assert.True(t, spans["projects"].Fallback)
	assert.True(t, spans["certifications"].Fallback)
}

func TestLocate_KeywordOrderWins(t *testing.T) {
	// "experience" appears before "work history" in the text, but the synonym
	// list is checked in order, so "employment" (earlier in the list) anchors
	// the section even though it appears later in the document.
	text := "experience note\nemployment record\n"

	span := Locate(text, ExperienceSet, nil)

	require.False(t, span.Fallback)
	// "employment" precedes "experience" in the synonym list.
	assert.Equal(t, len("experience note\n"), span.Start)
}

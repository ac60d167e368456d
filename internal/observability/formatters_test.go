package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintJobRequirement(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirement(&types.JobRequirement{
		Title:        "后端开发工程师",
		Company:      "某科技公司",
		Location:     "上海",
		Requirements: []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7"},
		KeySkills:    []string{"Python", "Django"},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB REQUIREMENT")
	assert.Contains(t, out, "后端开发工程师")
	assert.Contains(t, out, "... and 2 more")
	assert.Contains(t, out, "Python, Django")
}

func TestPrintJobRequirement_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobRequirement(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCandidate(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCandidate(&types.CandidateRecord{
		Contact: types.ContactInfo{Name: "张三", Email: "zhangsan@example.com"},
		Skills:  []string{"Python"},
		WorkExperience: []types.ExperienceEntry{
			{Company: "A公司"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED CANDIDATE")
	assert.Contains(t, out, "张三")
	assert.Contains(t, out, "Experience entries:  1")
}

func TestPrintScoreBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreBreakdown(&types.ScoreBreakdown{
		SkillScore:      50.0,
		ExperienceScore: 100.0,
		FinalScore:      70.0,
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH SCORE")
	assert.Contains(t, out, "70.0 / 100")
}

func TestPrintSuggestions_Numbered(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(&types.SuggestionSet{
		ContentSuggestions: []string{"first", "second"},
		ATSSuggestions:     []string{"ats"},
	})

	out := buf.String()
	assert.Contains(t, out, "1. first")
	assert.Contains(t, out, "2. second")
	assert.Contains(t, out, "1. ats")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}

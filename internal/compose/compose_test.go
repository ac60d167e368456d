package compose

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_BlockOrder(t *testing.T) {
	job := types.JobRequirement{Title: "后端工程师", Company: "某科技公司", KeySkills: []string{"Django"}}
	candidate := types.CandidateRecord{
		Contact: types.ContactInfo{Name: "张三", Email: "zhangsan@example.com"},
		Skills:  []string{"Python"},
		WorkExperience: []types.ExperienceEntry{
			{Company: "阿里巴巴集团", Title: "unknown", Duration: "2019-2022", Description: "使用Python开发"},
		},
		Education: []types.EducationEntry{{Institution: "清华大学", Degree: "学士", Major: "unknown"}},
		Projects:  []types.ProjectEntry{{Name: "实时数据管道", Description: "基于Kafka的事件处理"}},
	}
	score := types.ScoreBreakdown{FinalScore: 70.0}
	suggestions := types.SuggestionSet{
		ContentSuggestions: []string{"first", "second"},
		ATSSuggestions:     []string{"ats one"},
	}

	doc := Document(job, candidate, score, suggestions)

	headings := []string{
		"=== Optimized Resume ===",
		"Target Position: 后端工程师",
		"Target Company: 某科技公司",
		"Match Score: 70.0%",
		"[Contact Information]",
		"[Core Skills]",
		"[Work Experience]",
		"[Education]",
		"[Projects]",
		"[Optimization Suggestions]",
		"[ATS Suggestions]",
	}
	prev := -1
	for _, h := range headings {
		idx := strings.Index(doc, h)
		require.GreaterOrEqual(t, idx, 0, "missing heading %q", h)
		assert.Greater(t, idx, prev, "heading %q out of order", h)
		prev = idx
	}

	assert.Contains(t, doc, "1. first\n2. second\n")
	assert.Contains(t, doc, "1. ats one\n")
}

func TestDocument_RequiredSkillsNeverDropped(t *testing.T) {
	job := types.JobRequirement{KeySkills: []string{"Python", "Django"}}
	candidate := types.CandidateRecord{Skills: []string{"Python", "Go"}}

	doc := Document(job, candidate, types.ScoreBreakdown{}, types.SuggestionSet{})

	assert.Contains(t, doc, "• Python, Go, Django\n")
}

func TestDocument_EmptyCandidateElidesBlocks(t *testing.T) {
	doc := Document(types.JobRequirement{}, types.CandidateRecord{}, types.ScoreBreakdown{}, types.SuggestionSet{})

	assert.Contains(t, doc, "Target Position: Unknown Position")
	assert.Contains(t, doc, "Target Company: Unknown Company")
	assert.NotContains(t, doc, "[Contact Information]")
	assert.NotContains(t, doc, "[Core Skills]")
	assert.NotContains(t, doc, "[Work Experience]")
	assert.NotContains(t, doc, "[Education]")
	assert.NotContains(t, doc, "[Projects]")
	// Suggestion headings stay even when the lists are empty.
	assert.Contains(t, doc, "[Optimization Suggestions]")
	assert.Contains(t, doc, "[ATS Suggestions]")
}

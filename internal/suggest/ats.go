package suggest

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	minSkillCount      = 5
	minActionVerbCount = 3
	minPhoneLength     = 10
)

// standardPhoneRe accepts digits plus the separators ATS parsers tolerate.
var standardPhoneRe = regexp.MustCompile(`^[0-9\s()+\-]+$`)

// atsActionVerbs are the English verbs ATS scoring rewards in experience
// bullets.
var atsActionVerbs = []string{
	"achieved", "improved", "managed", "developed", "implemented", "created", "led", "optimized",
	"designed", "built", "maintained", "collaborated", "analyzed", "solved", "increased", "decreased",
	"streamlined", "innovated", "mentored", "trained", "negotiated", "strategized", "transformed",
}

// chineseActionVerbs mirrors atsActionVerbs for Chinese-language resumes.
var chineseActionVerbs = []string{
	"实现", "提升", "管理", "开发", "实施", "创建", "领导", "优化",
	"设计", "构建", "维护", "协作", "分析", "解决", "增加", "减少",
	"简化", "创新", "指导", "培训", "谈判", "制定", "转型",
}

// atsSuggestions inspects candidate data alone. The three formatting
// reminders at the end are emitted unconditionally.
func atsSuggestions(candidate types.CandidateRecord) []string {
	var suggestions []string

	if candidate.Contact.Email == "" {
		suggestions = append(suggestions,
			"Add a valid email address so ATS systems can identify your contact details")
	}

	phone := candidate.Contact.Phone
	if phone != "" && (!standardPhoneRe.MatchString(phone) || len(phone) < minPhoneLength) {
		suggestions = append(suggestions,
			"Use a standard phone number format and avoid special symbols")
	}

	if len(candidate.Skills) == 0 {
		suggestions = append(suggestions,
			"Add a skills section listing technical and soft skills relevant to the target position")
	} else if len(candidate.Skills) < minSkillCount {
		suggestions = append(suggestions,
			"Expand your skills list to at least 5 core skills relevant to the target position")
	}

	if len(candidate.WorkExperience) > 0 {
		parts := make([]string, 0, len(candidate.WorkExperience))
		for _, exp := range candidate.WorkExperience {
			parts = append(parts, exp.Description)
		}
		combined := strings.ToLower(strings.Join(parts, " "))

		if countVerbs(combined, atsActionVerbs) < minActionVerbCount {
			suggestions = append(suggestions,
				"Use more ATS-friendly action verbs in your work experience, such as: achieved, managed, developed")
		}
		if countVerbs(combined, chineseActionVerbs) < minActionVerbCount {
			suggestions = append(suggestions,
				"Use more outcome-oriented verbs in your work experience, such as: 实现、提升、管理")
		}
	}

	suggestions = append(suggestions,
		"Use a standard file format (.docx or .pdf); avoid images and scanned documents",
		"Use a simple heading structure; avoid complex graphics and tables",
		"Use a standard font (such as Arial, Calibri, or Times New Roman) at 10-12pt",
	)
	return suggestions
}

func countVerbs(text string, verbs []string) int {
	count := 0
	for _, verb := range verbs {
		if strings.Contains(text, verb) {
			count++
		}
	}
	return count
}

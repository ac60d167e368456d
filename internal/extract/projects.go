package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-optimizer/internal/segment"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// minDescriptionLineRunes filters out fragments too short to be useful
// project description lines.
const minDescriptionLineRunes = 10

var projectHeaderRe = regexp.MustCompile(`^项目.*[:：]`)

// Projects extracts project entries from the projects section. Lines are
// folded left to right: a header line opens a new project, subsequent long
// lines accumulate into its description, and the last open project is flushed
// when the section ends.
func Projects(text string) []types.ProjectEntry {
	span := segment.Locate(text, segment.ProjectsSet, []segment.KeywordSet{
		segment.ExperienceSet, segment.EducationSet, segment.SkillsSet, segment.CertificationsSet,
	})

	// A fallback span means no projects section exists; scanning the whole
	// document here would turn every "project" mention into a phantom entry.
	if span.Fallback {
		return []types.ProjectEntry{}
	}

	projects := []types.ProjectEntry{}
	var pending *types.ProjectEntry
	flush := func() {
		if pending != nil {
			pending.Description = strings.TrimSpace(pending.Description)
			projects = append(projects, *pending)
			pending = nil
		}
	}

	for _, line := range strings.Split(span.Text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isProjectHeader(line) {
			flush()
			pending = &types.ProjectEntry{
				Name:         line,
				Technologies: []string{},
				Duration:     "unknown",
			}
			continue
		}

		if pending != nil && utf8.RuneCountInString(line) > minDescriptionLineRunes {
			pending.Description += line + " "
		}
	}
	flush()

	return projects
}

// isProjectHeader reports whether a line opens a new project: either a
// "项目…:" prefixed title or any line mentioning "project".
func isProjectHeader(line string) bool {
	return projectHeaderRe.MatchString(line) ||
		strings.Contains(strings.ToLower(line), "project")
}

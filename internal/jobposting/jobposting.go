// Package jobposting builds JobRequirement records from job board URLs or
// pasted free-text descriptions.
package jobposting

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-optimizer/internal/fetch"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// maxRequirements caps how many requirement lines are harvested from a page.
	maxRequirements = 10
	// minRequirementRunes filters out navigation crumbs and bullets too
	// short to be a real requirement.
	minRequirementRunes = 5

	customTitle   = "Custom Position"
	customCompany = "Custom Company"

	noRequirementsListed = "No specific requirements listed"
)

// requirementKeywords mark the heading of a requirements block on a page.
var requirementKeywords = []string{
	"要求", "需求", "requirement", "qualification", "资格", "responsibilit", "职责",
}

// descriptionSentenceKeywords select which sentences of a pasted
// description count as requirements.
var descriptionSentenceKeywords = []string{"经验", "技能", "能力", "学历", "资格"}

// Options configures posting acquisition.
type Options struct {
	Fetch      *fetch.Options
	UseBrowser bool // render with headless Chrome when static HTML looks empty
	Verbose    bool
}

// FromURL fetches a job posting page and extracts a JobRequirement from
// it, using per-site selectors when the board is recognized.
func FromURL(ctx context.Context, urlStr string, opts *Options) (types.JobRequirement, error) {
	if opts == nil {
		opts = &Options{}
	}

	result, err := fetch.URL(ctx, urlStr, opts.Fetch)
	if err != nil {
		return types.JobRequirement{}, err
	}

	platform := fetch.DetectPlatform(urlStr)
	html := result.HTML

	// SPA boards serve an empty shell over plain HTTP; fall back to a
	// rendered copy when the static page carries no posting text.
	if opts.UseBrowser {
		text, textErr := fetch.ExtractMainText(html, fetch.PlatformContentSelectors(platform))
		if textErr == nil && fetch.ShouldUseBrowser(text) {
			if rendered, browserErr := fetch.BrowserSimple(ctx, urlStr, opts.Verbose); browserErr == nil {
				html = rendered
			}
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return types.JobRequirement{}, &fetch.Error{URL: urlStr, Message: "parsing posting HTML", Cause: err}
	}

	selectors := fetch.PlatformFieldSelectors(platform)
	job := types.JobRequirement{
		URL:         urlStr,
		Title:       firstSelectorText(doc, selectors.Title),
		Company:     firstSelectorText(doc, selectors.Company),
		Description: firstSelectorText(doc, selectors.Description),
		Location:    firstSelectorText(doc, selectors.Location),
	}
	job.Requirements = pageRequirements(doc)
	job.KeySkills = ScanSkills(doc.Text())
	return job, nil
}

// FromDescription builds a JobRequirement from pasted free text. Title
// and company get placeholder values; requirements are the sentences that
// mention a requirement keyword.
func FromDescription(description string) types.JobRequirement {
	return types.JobRequirement{
		Title:        customTitle,
		Company:      customCompany,
		Description:  description,
		Requirements: sentenceRequirements(description),
		KeySkills:    ScanSkills(description),
	}
}

// firstSelectorText tries selectors in order and returns the first
// non-empty trimmed text match.
func firstSelectorText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

// pageRequirements collects requirement lines from list items and
// paragraphs that follow a requirements-style heading.
func pageRequirements(doc *goquery.Document) []string {
	var requirements []string
	seen := map[string]struct{}{}

	add := func(text string) bool {
		text = strings.TrimSpace(text)
		if utf8.RuneCountInString(text) <= minRequirementRunes {
			return false
		}
		if _, dup := seen[text]; dup {
			return false
		}
		seen[text] = struct{}{}
		requirements = append(requirements, text)
		return true
	}

	doc.Find("h1, h2, h3, h4, strong, b, p, div, span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !containsRequirementKeyword(s.Clone().Children().Remove().End().Text()) {
			return true
		}
		// Harvest the sibling list or paragraphs after the heading.
		s.NextAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
			if len(requirements) >= maxRequirements {
				return false
			}
			if sib.Is("ul, ol") {
				sib.Find("li").Each(func(_ int, li *goquery.Selection) {
					if len(requirements) < maxRequirements {
						add(li.Text())
					}
				})
				return true
			}
			if sib.Is("li, p, div") {
				add(sib.Text())
			}
			return true
		})
		return len(requirements) < maxRequirements
	})

	if len(requirements) == 0 {
		return []string{noRequirementsListed}
	}
	return requirements
}

func sentenceRequirements(description string) []string {
	var requirements []string
	for _, sentence := range strings.Split(description, "。") {
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}
		for _, keyword := range descriptionSentenceKeywords {
			if strings.Contains(trimmed, keyword) {
				requirements = append(requirements, trimmed)
				break
			}
		}
	}
	if len(requirements) == 0 {
		return []string{noRequirementsListed}
	}
	return requirements
}

func containsRequirementKeyword(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range requirementKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

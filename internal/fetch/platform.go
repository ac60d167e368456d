// Package fetch - platform.go provides job-site detection and per-site
// field selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board.
type Platform string

const (
	// PlatformLinkedIn is linkedin.com
	PlatformLinkedIn Platform = "linkedin"
	// PlatformZhaopin is zhaopin.com (智联招聘)
	PlatformZhaopin Platform = "zhaopin"
	// Platform51Job is 51job.com (前程无忧)
	Platform51Job Platform = "51job"
	// PlatformUnknown is an unrecognized job board
	PlatformUnknown Platform = "unknown"
)

// FieldSelectors lists, per posting field, the CSS selectors to try in
// order. The first selector with a non-empty text match wins.
type FieldSelectors struct {
	Title       []string
	Company     []string
	Description []string
	Location    []string
}

// DetectPlatform identifies the job board from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	case strings.Contains(host, "zhaopin.com"):
		return PlatformZhaopin
	case strings.Contains(host, "51job.com"):
		return Platform51Job
	default:
		return PlatformUnknown
	}
}

// PlatformFieldSelectors returns the field selectors for a job board.
// Unknown boards get attribute-pattern selectors that work on most pages.
func PlatformFieldSelectors(platform Platform) FieldSelectors {
	switch platform {
	case PlatformLinkedIn:
		return FieldSelectors{
			Title:       []string{"h1.topcard__title"},
			Company:     []string{"a.topcard__org-name-link"},
			Description: []string{".show-more-less-html__markup"},
			Location:    []string{"span.topcard__flavor:nth-child(2)"},
		}
	case PlatformZhaopin:
		return FieldSelectors{
			Title:       []string{"h1"},
			Company:     []string{".company-name"},
			Description: []string{".job-detail-body"},
			Location:    []string{".job-address"},
		}
	case Platform51Job:
		return FieldSelectors{
			Title:       []string{"h1"},
			Company:     []string{".company-name"},
			Description: []string{".job-detail"},
			Location:    []string{".job-location"},
		}
	default:
		return FieldSelectors{
			Title:       []string{"h1", `[class*="title"]`, `[data-testid="job-title"]`, "title"},
			Company:     []string{`[class*="company"]`, `[data-testid="company-name"]`, `[class*="employer"]`},
			Description: []string{`[class*="description"]`, `[data-testid="job-description"]`, `[class*="job-desc"]`},
			Location:    []string{`[class*="location"]`, `[class*="address"]`},
		}
	}
}

// PlatformContentSelectors returns content-block selectors for whole-page
// text extraction on a job board.
func PlatformContentSelectors(platform Platform) []string {
	selectors := PlatformFieldSelectors(platform).Description
	return append(selectors, JobPostingSelectors()...)
}

// JobPostingSelectors returns generic selectors for job board pages.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		`[data-testid="job-description"]`,
		"main",
		"article",
		".content",
		"#content",
	}
}

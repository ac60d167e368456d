// Package types provides type definitions for structured resume and job data
// used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SourceFormat identifies the file format a raw document was acquired from.
type SourceFormat string

const (
	// FormatPDF is a PDF document
	FormatPDF SourceFormat = "pdf"
	// FormatDOCX is an Office Open XML document
	FormatDOCX SourceFormat = "docx"
	// FormatTXT is a plain-text document
	FormatTXT SourceFormat = "txt"
	// FormatHTML is an HTML page
	FormatHTML SourceFormat = "html"
)

// RawDocument is the text blob produced by document acquisition.
// It is immutable once produced; all extraction works on copies of Text.
type RawDocument struct {
	Text   string       `json:"text"`
	Format SourceFormat `json:"source_format"`
}

// ContactInfo holds contact fields extracted from a resume.
// Every field is optional; an empty field is a valid extraction outcome.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry represents one work history item. Duration keeps the raw
// matched date-range text; scoring matches substrings rather than parsed dates.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry represents one education item. Degree is one of a known
// degree-token set or "unknown"; Major and GraduationYear stay "unknown"
// placeholders (extraction depth is intentionally shallow).
type EducationEntry struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Major          string `json:"major"`
	GraduationYear string `json:"graduation_year"`
}

// ProjectEntry represents one project item assembled from the projects section.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Duration     string   `json:"duration"`
}

// CertificateEntry represents one certification line found in the resume.
type CertificateEntry struct {
	Name      string `json:"name"`
	Authority string `json:"authority"`
	Date      string `json:"date"`
}

// CandidateRecord aggregates everything extracted from a single resume.
// Text retains the full raw document text for fallback keyword matching.
type CandidateRecord struct {
	Text           string             `json:"text"`
	Contact        ContactInfo        `json:"contact_info"`
	WorkExperience []ExperienceEntry  `json:"work_experience"`
	Education      []EducationEntry   `json:"education"`
	Skills         []string           `json:"skills"`
	Projects       []ProjectEntry     `json:"projects"`
	Certifications []CertificateEntry `json:"certifications"`
}

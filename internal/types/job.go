package types

// JobRequirement represents a structured job posting. It is produced from a
// scraped posting, a free-text description, or a stored template, and has the
// same shape regardless of source.
type JobRequirement struct {
	URL          string   `json:"url,omitempty"`
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements" validate:"required"`
	KeySkills    []string `json:"key_skills" validate:"required"`
}

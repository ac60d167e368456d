// Package extract turns raw resume text into a structured CandidateRecord
// using pattern and keyword heuristics. Every sub-extractor fails soft:
// missing sections and unmatched patterns produce empty or placeholder values,
// never errors.
package extract

import "github.com/jonathan/resume-optimizer/internal/types"

// Candidate extracts a structured record from an acquired document. The
// transform is pure and deterministic; calling it twice on the same document
// yields identical records.
func Candidate(doc types.RawDocument) types.CandidateRecord {
	return types.CandidateRecord{
		Text:           doc.Text,
		Contact:        Contact(doc.Text),
		WorkExperience: Experience(doc.Text),
		Education:      Education(doc.Text),
		Skills:         Skills(doc.Text),
		Projects:       Projects(doc.Text),
		Certifications: Certifications(doc.Text),
	}
}

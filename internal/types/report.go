package types

// ScoreBreakdown holds the five weighted sub-scores and the final match score.
// All values are percentages in [0,100] rounded to one decimal. A sub-score of
// 100 may mean either a full match or a non-contributing dimension (the job
// expressed no relevant requirement); FinalScore only averages contributing
// dimensions.
type ScoreBreakdown struct {
	SkillScore      float64 `json:"skill_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`
	ProjectScore    float64 `json:"project_score"`
	KeywordScore    float64 `json:"keyword_score"`
	FinalScore      float64 `json:"final_score"`
}

// SuggestionSet holds ordered improvement suggestions, most important first.
// ContentSuggestions is never empty; it falls back to a single affirmative
// message when no gap is detected.
type SuggestionSet struct {
	ContentSuggestions []string `json:"content_suggestions"`
	ATSSuggestions     []string `json:"ats_suggestions"`
}

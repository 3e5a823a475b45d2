package models

// TermWeight is a single ranked TF-IDF term.
type TermWeight struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

type ResumeOnlyResponse struct {
	ResumeSkills   []string     `json:"resume_skills"`
	ResumeTopTerms []TermWeight `json:"resume_top_terms"`
	LLMAnalysis    *string      `json:"llm_analysis,omitempty"`
}

type AnalysisResponse struct {
	ResumeSkills          []string     `json:"resume_skills"`
	JDSkills              []string     `json:"jd_skills"`
	MatchedSkills         []string     `json:"matched_skills"`
	MissingSkills         []string     `json:"missing_skills"`
	SkillsMatchPercentage float64      `json:"skills_match_percentage"`
	SimilarityScore       float64      `json:"similarity_score"`
	ResumeTopTerms        []TermWeight `json:"resume_top_terms"`
	JDTopTerms            []TermWeight `json:"jd_top_terms"`
	LLMAnalysis           *string      `json:"llm_analysis,omitempty"`
}

type SkillsResponse struct {
	Skills []string `json:"skills"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

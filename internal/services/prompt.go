package services

import (
	"fmt"
	"strings"
)

// maxPromptInputBytes bounds the document text embedded in a prompt so long
// resumes do not blow past the model's input budget.
const maxPromptInputBytes = 4000

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildFitSummaryPrompt creates the prompt for a resume-versus-job assessment.
func (pb *PromptBuilder) BuildFitSummaryPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert HR recruiter assessing how well a candidate's resume fits a job description.

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

Write a concise assessment (3-5 sentences) covering:
1. The candidate's strongest qualifications for this role
2. Notable gaps between the resume and the job requirements
3. An overall fit judgement

Return ONLY the assessment text, no JSON or markdown formatting.`,
		truncateText(jobDescription, maxPromptInputBytes),
		truncateText(resumeText, maxPromptInputBytes))
}

// BuildResumeSummaryPrompt creates the prompt for a standalone resume summary.
func (pb *PromptBuilder) BuildResumeSummaryPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert HR recruiter reviewing a candidate's resume.

CANDIDATE RESUME:
%s

Write a concise summary (3-5 sentences) of the candidate's key technical skills, experience level, and standout achievements.

Return ONLY the summary text, no JSON or markdown formatting.`,
		truncateText(resumeText, maxPromptInputBytes))
}

func truncateText(text string, maxBytes int) string {
	if len(text) <= maxBytes {
		return text
	}
	// A byte slice can split a rune; drop the partial one if it does.
	return strings.ToValidUTF8(text[:maxBytes], "") + "..."
}

package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildATSReviewPrompt creates the prompt for an ATS compatibility review of
// a résumé against a job description. The model is asked for plain text in
// four fixed sections.
func (pb *PromptBuilder) BuildATSReviewPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`
ACT AS A SENIOR ATS SPECIALIST WITH 10 YEARS OF RECRUITMENT EXPERIENCE. Your task is to provide a detailed, ATS-focused review for the resume provided below against the target job description.

Resume Text for Review: %s

Target Job Description: %s

Output ONLY a single block of text with the following mandatory sections:

--- DEDICATED ATS COMPATIBILITY REPORT ---
1. JD Match Score (Rate 0-100%%):
2. Key Mistakes & Gaps: (List specific mistakes in formatting, grammar, or missing experience relative to the JD)
3. ATS Template & Formatting Check: (Critique the format for ATS compatibility, noting strengths or weaknesses)
4. Suggestions for Improvement: (List 3 specific, actionable changes to boost the score and make content more impactful)
`, resumeText, jobDescription)
}

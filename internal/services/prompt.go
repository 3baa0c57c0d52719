package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// SummaryContext carries what we know about the person when generating a
// professional summary.
type SummaryContext struct {
	Name       string
	Title      string
	Skills     []string
	Experience string
}

// BulletsContext carries the work-experience entry we are generating
// achievement bullets for.
type BulletsContext struct {
	Title              string
	Company            string
	CurrentDescription string
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// BuildSummaryPrompt creates the prompt for a professional summary paragraph.
func (pb *PromptBuilder) BuildSummaryPrompt(ctx SummaryContext, jobDescription string) string {
	skills := "Not provided"
	if len(ctx.Skills) > 0 {
		skills = strings.Join(ctx.Skills, ", ")
	}

	tailoring := ""
	if jobDescription != "" {
		tailoring = fmt.Sprintf("Target Job Description:\n%s\n\nTailor the summary to match this job description.\n", jobDescription)
	}

	return fmt.Sprintf(`You are an expert resume writer. Generate a compelling professional summary for a resume.

Context about the person:
- Name: %s
- Current/Target Role: %s
- Skills: %s
- Experience: %s

%s
Write a 2-3 sentence professional summary that:
1. Highlights key strengths and experience
2. Uses action-oriented language
3. Is ATS-friendly with relevant keywords
4. Sounds professional but not generic

Respond with ONLY the summary text, no quotes or additional formatting.`,
		orDefault(ctx.Name, "Not provided"),
		orDefault(ctx.Title, "Professional"),
		skills,
		orDefault(ctx.Experience, "Not provided"),
		tailoring)
}

// BuildBulletsPrompt creates the prompt for achievement bullet points.
func (pb *PromptBuilder) BuildBulletsPrompt(ctx BulletsContext, jobDescription string) string {
	tailoring := ""
	if jobDescription != "" {
		tailoring = fmt.Sprintf("Target Job Description:\n%s\n\nTailor the bullet points to highlight relevant experience for this role.\n", jobDescription)
	}

	return fmt.Sprintf(`You are an expert resume writer. Generate impactful achievement bullet points for a work experience entry.

Job Details:
- Title: %s
- Company: %s
- Current Description: %s

%s
Generate 3-5 achievement-focused bullet points that:
1. Start with strong action verbs
2. Include quantifiable results where possible (use realistic percentages/numbers)
3. Demonstrate impact and value
4. Are ATS-friendly with relevant keywords
5. Each bullet should be 1-2 lines max

Respond with ONLY the bullet points, one per line, starting each with "• " (bullet character). No additional text or formatting.`,
		orDefault(ctx.Title, "Not provided"),
		orDefault(ctx.Company, "Not provided"),
		orDefault(ctx.CurrentDescription, "None"),
		tailoring)
}

// BuildImprovePrompt creates the prompt that rewrites existing resume text.
func (pb *PromptBuilder) BuildImprovePrompt(originalText, jobDescription string) string {
	tailoring := ""
	if jobDescription != "" {
		tailoring = fmt.Sprintf("Target Job Description:\n%s\n\nOptimize the content to better match this job description.\n", jobDescription)
	}

	return fmt.Sprintf(`You are an expert resume writer. Improve the following resume content to be more impactful and ATS-friendly.

Original Content:
%s

%s
Improve the content by:
1. Using stronger action verbs
2. Adding quantifiable metrics where appropriate
3. Making it more concise and impactful
4. Including relevant keywords for ATS systems

Respond with ONLY the improved text, maintaining the same format as the original.`,
		originalText, tailoring)
}

// BuildAnalysisPrompt creates the ATS analysis prompt. The response schema
// is fixed so it can be unmarshalled into models.AnalysisReport.
func (pb *PromptBuilder) BuildAnalysisPrompt(resumeText, jobDescription string) string {
	target := "No specific job description provided - provide general feedback."
	if jobDescription != "" {
		target = fmt.Sprintf("Target Job Description:\n%s", jobDescription)
	}

	return fmt.Sprintf(`You are an expert resume analyzer and ATS (Applicant Tracking System) specialist. Analyze the following resume and provide detailed feedback.

Resume:
%s

%s

Analyze the resume thoroughly and respond with a JSON object containing:

1. "ats_score": Overall ATS compatibility score (0-100)
2. "keyword_match_score": How well keywords match common job requirements (0-100)
3. "format_score": Resume format and structure quality (0-100)
4. "content_score": Quality and impact of content (0-100)
5. "readability_score": How easy the resume is to scan quickly (0-100)
6. "impact_score": How well achievements are quantified with metrics (0-100)
7. "overall_feedback": 2-3 sentence summary of the resume's strengths and areas for improvement
8. "suggestions": Array of 5-7 specific, actionable improvement suggestions
9. "keyword_analysis": Object with "found" (array of good keywords present) and "missing" (array of important keywords that should be added)
10. "ats_checklist": Object with these boolean fields checking ATS compatibility:
    - "has_contact_info": Does it have name, email, phone?
    - "has_clear_sections": Are sections clearly labeled (Experience, Education, Skills)?
    - "no_tables_graphics": Free of tables, images, graphics that ATS can't read?
    - "standard_fonts": Uses standard readable fonts?
    - "proper_date_format": Dates are in consistent, parseable format?
    - "no_headers_footers": Important info not in headers/footers?
    - "action_verbs": Uses strong action verbs?
    - "quantified_achievements": Contains measurable achievements with numbers?
11. "strengths": Array of 3-4 specific things the resume does well
12. "critical_issues": Array of 1-3 most critical problems that must be fixed (empty if none)

Respond ONLY with valid JSON, no markdown or explanation.`, resumeText, target)
}

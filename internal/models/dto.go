package models

import "encoding/json"

type SaveResumeRequest struct {
	ID       string          `json:"id,omitempty"`
	Title    string          `json:"title" validate:"required"`
	Template string          `json:"template"`
	Data     json.RawMessage `json:"data" validate:"required"`
}

type SaveResumeResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updated_at"`
}

type RenderRequest struct {
	Template string          `json:"template"`
	Data     json.RawMessage `json:"data" validate:"required"`
}

type ReorderRequest struct {
	Order []string `json:"order" validate:"required"`
	From  int      `json:"from"`
	To    int      `json:"to"`
}

type ReorderResponse struct {
	Order []string `json:"order"`
}

type GenerateResponse struct {
	Content string   `json:"content,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description,omitempty"`
}

type KeywordAnalysis struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

type ATSChecklist struct {
	HasContactInfo         bool `json:"has_contact_info"`
	HasClearSections       bool `json:"has_clear_sections"`
	NoTablesGraphics       bool `json:"no_tables_graphics"`
	StandardFonts          bool `json:"standard_fonts"`
	ProperDateFormat       bool `json:"proper_date_format"`
	NoHeadersFooters       bool `json:"no_headers_footers"`
	ActionVerbs            bool `json:"action_verbs"`
	QuantifiedAchievements bool `json:"quantified_achievements"`
}

type AnalysisReport struct {
	ATSScore         int             `json:"ats_score"`
	KeywordMatch     int             `json:"keyword_match_score"`
	FormatScore      int             `json:"format_score"`
	ContentScore     int             `json:"content_score"`
	ReadabilityScore int             `json:"readability_score"`
	ImpactScore      int             `json:"impact_score"`
	OverallFeedback  string          `json:"overall_feedback"`
	Suggestions      []string        `json:"suggestions"`
	KeywordAnalysis  KeywordAnalysis `json:"keyword_analysis"`
	ATSChecklist     ATSChecklist    `json:"ats_checklist"`
	Strengths        []string        `json:"strengths"`
	CriticalIssues   []string        `json:"critical_issues"`
}

type ExtractResponse struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

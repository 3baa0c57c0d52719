package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/models"
	"resume-builder/internal/repositories"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, userID uuid.UUID, resumeText, jobDescription string) (*models.AnalysisReport, error)
	History(userID uuid.UUID) ([]models.ResumeAnalysis, error)
}

type analyzerService struct {
	ai            AIService
	analysisRepo  repositories.AnalysisRepository
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewAnalyzerService(ai AIService, analysisRepo repositories.AnalysisRepository, maxRetries int) AnalyzerService {
	return &analyzerService{
		ai:            ai,
		analysisRepo:  analysisRepo,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// Analyze implements AnalyzerService. The report is returned to the caller
// and persisted for the user's history; a failed save does not fail the
// analysis.
func (a *analyzerService) Analyze(ctx context.Context, userID uuid.UUID, resumeText, jobDescription string) (*models.AnalysisReport, error) {
	prompt := a.promptBuilder.BuildAnalysisPrompt(resumeText, jobDescription)

	log.Printf("🤖 Analyzing resume (%d characters)...", len(resumeText))

	response, err := a.ai.GenerateTextWithRetry(ctx, prompt, 0.3, a.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze resume: %w", err)
	}

	var report models.AnalysisReport
	if err := parseJSONResponse(response, &report); err != nil {
		log.Printf("❌ Failed to parse analysis response: %v", err)
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	if err := a.save(userID, resumeText, jobDescription, &report); err != nil {
		log.Printf("⚠️  Failed to save analysis: %v", err)
	}

	return &report, nil
}

// History implements AnalyzerService. Returns the user's stored analyses,
// newest first.
func (a *analyzerService) History(userID uuid.UUID) ([]models.ResumeAnalysis, error) {
	return a.analysisRepo.FindByUser(userID)
}

func (a *analyzerService) save(userID uuid.UUID, resumeText, jobDescription string, report *models.AnalysisReport) error {
	suggestions, err := json.Marshal(report.Suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	keywords, err := json.Marshal(report.KeywordAnalysis)
	if err != nil {
		return fmt.Errorf("failed to marshal keyword analysis: %w", err)
	}

	analysis := &models.ResumeAnalysis{
		UserID:           userID,
		ResumeText:       resumeText,
		ATSScore:         report.ATSScore,
		KeywordMatch:     report.KeywordMatch,
		FormatScore:      report.FormatScore,
		ContentScore:     report.ContentScore,
		ReadabilityScore: report.ReadabilityScore,
		ImpactScore:      report.ImpactScore,
		OverallFeedback:  report.OverallFeedback,
		Suggestions:      suggestions,
		KeywordAnalysis:  keywords,
	}
	if jobDescription != "" {
		analysis.JobDescription = &jobDescription
	}

	return a.analysisRepo.Create(analysis)
}

func parseJSONResponse(response string, target interface{}) error {
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or
// other formatting.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

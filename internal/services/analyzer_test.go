package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/models"
)

type stubAnalysisRepo struct {
	created []*models.ResumeAnalysis
}

func (s *stubAnalysisRepo) Create(analysis *models.ResumeAnalysis) error {
	s.created = append(s.created, analysis)
	return nil
}

func (s *stubAnalysisRepo) FindByUser(userID uuid.UUID) ([]models.ResumeAnalysis, error) {
	var out []models.ResumeAnalysis
	for _, a := range s.created {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

const analysisJSON = `{
	"ats_score": 82,
	"keyword_match_score": 74,
	"format_score": 90,
	"content_score": 78,
	"readability_score": 85,
	"impact_score": 70,
	"overall_feedback": "Solid resume with room for stronger metrics.",
	"suggestions": ["Quantify achievements", "Add a skills section header"],
	"keyword_analysis": {"found": ["Go", "Postgres"], "missing": ["Kubernetes"]},
	"ats_checklist": {
		"has_contact_info": true,
		"has_clear_sections": true,
		"no_tables_graphics": true,
		"standard_fonts": true,
		"proper_date_format": false,
		"no_headers_footers": true,
		"action_verbs": true,
		"quantified_achievements": false
	},
	"strengths": ["Clear structure"],
	"critical_issues": []
}`

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"markdown fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", `Here you go: {"a":1} hope that helps`, `{"a":1}`},
		{"no json at all", "nothing here", "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.input))
		})
	}
}

func TestAnalyzeParsesReportAndPersists(t *testing.T) {
	ai := &stubAI{response: "```json\n" + analysisJSON + "\n```"}
	repo := &stubAnalysisRepo{}
	analyzer := NewAnalyzerService(ai, repo, 3)

	userID := uuid.New()
	report, err := analyzer.Analyze(context.Background(), userID, "resume text", "job description")
	require.NoError(t, err)

	assert.Equal(t, 82, report.ATSScore)
	assert.Equal(t, 74, report.KeywordMatch)
	assert.Equal(t, []string{"Go", "Postgres"}, report.KeywordAnalysis.Found)
	assert.True(t, report.ATSChecklist.HasContactInfo)
	assert.False(t, report.ATSChecklist.QuantifiedAchievements)
	assert.Empty(t, report.CriticalIssues)

	require.Len(t, repo.created, 1)
	saved := repo.created[0]
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, "resume text", saved.ResumeText)
	require.NotNil(t, saved.JobDescription)
	assert.Equal(t, "job description", *saved.JobDescription)
	assert.Equal(t, 82, saved.ATSScore)
}

func TestAnalyzeUnparsableResponseErrors(t *testing.T) {
	ai := &stubAI{response: "I cannot analyze this resume."}
	analyzer := NewAnalyzerService(ai, &stubAnalysisRepo{}, 3)

	_, err := analyzer.Analyze(context.Background(), uuid.New(), "resume text", "")
	assert.Error(t, err)
}

func TestHistoryReturnsOnlyUsersAnalyses(t *testing.T) {
	ai := &stubAI{response: analysisJSON}
	repo := &stubAnalysisRepo{}
	analyzer := NewAnalyzerService(ai, repo, 3)

	userID := uuid.New()
	_, err := analyzer.Analyze(context.Background(), userID, "resume text", "")
	require.NoError(t, err)
	_, err = analyzer.Analyze(context.Background(), uuid.New(), "someone else's resume", "")
	require.NoError(t, err)

	analyses, err := analyzer.History(userID)
	require.NoError(t, err)
	require.Len(t, analyses, 1)
	assert.Equal(t, "resume text", analyses[0].ResumeText)
}

func TestAnalyzeOmitsEmptyJobDescription(t *testing.T) {
	ai := &stubAI{response: analysisJSON}
	repo := &stubAnalysisRepo{}
	analyzer := NewAnalyzerService(ai, repo, 3)

	_, err := analyzer.Analyze(context.Background(), uuid.New(), "resume text", "")
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Nil(t, repo.created[0].JobDescription)
}

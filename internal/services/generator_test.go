package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAI struct {
	response string
	err      error
	prompts  []string
}

func (s *stubAI) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func (s *stubAI) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return s.GenerateText(ctx, prompt, temperature)
}

func TestParseBullets(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			"bullet characters",
			"• Led team of 5\n• Shipped v2",
			[]string{"Led team of 5", "Shipped v2"},
		},
		{
			"dashes and asterisks",
			"- Cut latency by 40%\n* Mentored juniors",
			[]string{"Cut latency by 40%", "Mentored juniors"},
		},
		{
			"blank lines dropped",
			"• First\n\n   \n• Second\n",
			[]string{"First", "Second"},
		},
		{
			"plain lines kept",
			"Improved uptime\nReduced costs",
			[]string{"Improved uptime", "Reduced costs"},
		},
		{
			"empty response",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBullets(tt.response))
		})
	}
}

func TestGenerateSummaryTrimsResponse(t *testing.T) {
	ai := &stubAI{response: "\n  A seasoned engineer.  \n"}
	gen := NewGeneratorService(ai, 3)

	got, err := gen.GenerateSummary(context.Background(), SummaryContext{Name: "Jane"}, "")
	require.NoError(t, err)
	assert.Equal(t, "A seasoned engineer.", got)
}

func TestGenerateSummaryPromptIncludesJobDescription(t *testing.T) {
	ai := &stubAI{response: "ok"}
	gen := NewGeneratorService(ai, 3)

	_, err := gen.GenerateSummary(context.Background(), SummaryContext{Name: "Jane"}, "Senior Go developer at Acme")
	require.NoError(t, err)

	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Senior Go developer at Acme")
	assert.Contains(t, ai.prompts[0], "Jane")
}

func TestGenerateBullets(t *testing.T) {
	ai := &stubAI{response: "• Built the payments API\n• Cut p99 latency by 40%"}
	gen := NewGeneratorService(ai, 3)

	got, err := gen.GenerateBullets(context.Background(), BulletsContext{Title: "Engineer", Company: "Acme"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Built the payments API", "Cut p99 latency by 40%"}, got)
}

func TestGenerateBulletsEmptyResponseErrors(t *testing.T) {
	ai := &stubAI{response: "\n\n"}
	gen := NewGeneratorService(ai, 3)

	_, err := gen.GenerateBullets(context.Background(), BulletsContext{Title: "Engineer"}, "")
	assert.Error(t, err)
}

func TestGeneratorPropagatesRateLimit(t *testing.T) {
	ai := &stubAI{err: ErrRateLimited}
	gen := NewGeneratorService(ai, 3)

	_, err := gen.ImproveText(context.Background(), "some text", "")
	assert.True(t, errors.Is(err, ErrRateLimited))
}

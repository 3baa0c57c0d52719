package services

import (
	"context"
	"fmt"
	"strings"
)

type GeneratorService interface {
	GenerateSummary(ctx context.Context, sctx SummaryContext, jobDescription string) (string, error)
	GenerateBullets(ctx context.Context, bctx BulletsContext, jobDescription string) ([]string, error)
	ImproveText(ctx context.Context, originalText, jobDescription string) (string, error)
}

type generatorService struct {
	ai            AIService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewGeneratorService(ai AIService, maxRetries int) GeneratorService {
	return &generatorService{
		ai:            ai,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// GenerateSummary implements GeneratorService.
func (g *generatorService) GenerateSummary(ctx context.Context, sctx SummaryContext, jobDescription string) (string, error) {
	prompt := g.promptBuilder.BuildSummaryPrompt(sctx, jobDescription)

	response, err := g.ai.GenerateTextWithRetry(ctx, prompt, 0.7, g.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	return strings.TrimSpace(response), nil
}

// GenerateBullets implements GeneratorService.
func (g *generatorService) GenerateBullets(ctx context.Context, bctx BulletsContext, jobDescription string) ([]string, error) {
	prompt := g.promptBuilder.BuildBulletsPrompt(bctx, jobDescription)

	response, err := g.ai.GenerateTextWithRetry(ctx, prompt, 0.7, g.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate bullets: %w", err)
	}

	bullets := ParseBullets(response)
	if len(bullets) == 0 {
		return nil, fmt.Errorf("no bullet points in response")
	}

	return bullets, nil
}

// ImproveText implements GeneratorService.
func (g *generatorService) ImproveText(ctx context.Context, originalText, jobDescription string) (string, error) {
	prompt := g.promptBuilder.BuildImprovePrompt(originalText, jobDescription)

	response, err := g.ai.GenerateTextWithRetry(ctx, prompt, 0.7, g.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to improve text: %w", err)
	}

	return strings.TrimSpace(response), nil
}

// ParseBullets splits a model response into individual bullet points. The
// model is asked to prefix each line with "• " but dashes and asterisks show
// up anyway, so all three markers are stripped.
func ParseBullets(response string) []string {
	var bullets []string

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "•")
		line = strings.TrimPrefix(line, "-")
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)

		if line != "" {
			bullets = append(bullets, line)
		}
	}

	return bullets
}

package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var (
	ErrRateLimited    = errors.New("rate limit exceeded")
	ErrQuotaExhausted = errors.New("ai credits exhausted")
)

type AIService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error)
}

type aiService struct {
	client    *genai.Client
	modelName string
}

func NewAIService(apiKey string) (AIService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &aiService{
		client:    client,
		modelName: "gemini-2.5-flash",
	}, nil
}

// GenerateText implements AIService.
func (a *aiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.modelName, genai.Text(prompt), config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.Code {
			case 429:
				return "", ErrRateLimited
			case 402:
				return "", ErrQuotaExhausted
			}
		}
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// GenerateTextWithRetry implements AIService. Rate-limit and quota errors
// are terminal, retrying them only burns more quota.
func (a *aiService) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err := a.GenerateText(ctx, prompt, temperature)
		if err == nil {
			return result, nil
		}

		if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrQuotaExhausted) {
			return "", err
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < maxRetries {
			fmt.Printf("⚠️ Attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

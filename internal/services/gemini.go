package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"airesume/resume-builder/internal/apperrors"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiService sends a single user message to the model and returns the
// generated text.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiService struct {
	client    *genai.Client
	initErr   error
	modelName string
}

// NewGeminiService builds the provider client. A client that cannot be
// created (for example because no API key is configured) is not fatal:
// every GenerateText call reports the construction error instead.
func NewGeminiService(ctx context.Context, apiKey, modelName string) GeminiService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	svc := &geminiService{modelName: modelName}

	if apiKey == "" {
		svc.initErr = errors.New("GEMINI_API_KEY is not configured")
		log.Error().Err(svc.initErr).Msg("❌ Gemini client not initialized")
		return svc
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		svc.initErr = fmt.Errorf("failed to create gemini client: %w", err)
		log.Error().Err(err).Msg("❌ Gemini client not initialized")
		return svc
	}

	svc.client = client
	return svc
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.initErr != nil {
		return "", apperrors.Provider("gemini unavailable", g.initErr)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		log.Error().Err(err).Str("model", g.modelName).Msg("❌ Gemini API error")
		return "", apperrors.Provider("failed to generate text", err)
	}

	if resp == nil {
		return "", apperrors.Provider("failed to generate text", errors.New("nil response"))
	}

	text := resp.Text()
	if text == "" {
		reason := "no text content in response"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			reason = fmt.Sprintf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", apperrors.Provider("failed to generate text", errors.New(reason))
	}

	log.Debug().Str("model", g.modelName).Int("chars", len(text)).Msg("📊 Gemini response received")

	return text, nil
}

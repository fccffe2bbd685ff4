package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/config"
	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ports.ReviewGenerator = (*GeminiReviewGenerator)(nil)

const (
	reviewTemperature     = 0.0
	reviewMaxOutputTokens = 1200
)

type GeminiReviewGenerator struct {
	client *genai.Client
	model  config.Model
	trans  *i18n.Translations
}

func NewGeminiReviewGenerator(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*GeminiReviewGenerator, error) {
	providerCfg, exists := cfg.AIProviders[config.AIGemini]
	if !exists || providerCfg.APIKey == "" {
		msg := trans.GetMessage("error_missing_api_key", 0, map[string]interface{}{"Provider": "gemini"})
		return nil, domainerrors.NewAIProviderNotConfiguredError("gemini", msg)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(providerCfg.APIKey))
	if err != nil {
		msg := trans.GetMessage("ai_service.error_ai_client", 0, map[string]interface{}{
			"Error": err,
		})
		return nil, fmt.Errorf("%s", msg)
	}

	return &GeminiReviewGenerator{
		client: client,
		model:  cfg.ModelFor(config.AIGemini),
		trans:  trans,
	}, nil
}

func (g *GeminiReviewGenerator) GenerateReview(ctx context.Context, prompt []models.PromptMessage) (string, error) {
	model := g.client.GenerativeModel(string(g.model))
	model.SetTemperature(reviewTemperature)
	model.SetMaxOutputTokens(reviewMaxOutputTokens)

	var userContent string
	for _, message := range prompt {
		switch message.Role {
		case models.PromptRoleSystem:
			model.SystemInstruction = &genai.Content{
				Parts: []genai.Part{genai.Text(message.Content)},
			}
		case models.PromptRoleUser:
			userContent = message.Content
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userContent))
	if err != nil {
		return "", fmt.Errorf("error al generar la review: %w", err)
	}

	responseText := formatResponse(resp)
	if responseText == "" {
		return "", fmt.Errorf("respuesta vacía de la IA")
	}
	return responseText, nil
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				formattedContent.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return formattedContent.String()
}

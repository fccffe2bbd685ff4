package openai

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateReview/internal/config"
	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var _ ports.ReviewGenerator = (*OpenAIReviewGenerator)(nil)

// Parámetros deterministas del request: las reviews del mismo diff tienen
// que ser lo más reproducibles posible.
const (
	reviewTemperature = 0.0
	reviewMaxTokens   = 1200
)

type OpenAIReviewGenerator struct {
	client openai.Client
	model  config.Model
	trans  *i18n.Translations
}

func NewOpenAIReviewGenerator(cfg *config.Config, trans *i18n.Translations) (*OpenAIReviewGenerator, error) {
	providerCfg, exists := cfg.AIProviders[config.AIOpenAI]
	if !exists || providerCfg.APIKey == "" {
		msg := trans.GetMessage("error_missing_api_key", 0, map[string]interface{}{"Provider": "openai"})
		return nil, domainerrors.NewAIProviderNotConfiguredError("openai", msg)
	}

	client := openai.NewClient(option.WithAPIKey(providerCfg.APIKey))
	return &OpenAIReviewGenerator{
		client: client,
		model:  cfg.ModelFor(config.AIOpenAI),
		trans:  trans,
	}, nil
}

func (g *OpenAIReviewGenerator) GenerateReview(ctx context.Context, prompt []models.PromptMessage) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(prompt))
	for _, message := range prompt {
		switch message.Role {
		case models.PromptRoleSystem:
			messages = append(messages, openai.SystemMessage(message.Content))
		case models.PromptRoleUser:
			messages = append(messages, openai.UserMessage(message.Content))
		}
	}

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(g.model),
		Messages:    messages,
		Temperature: openai.Float(reviewTemperature),
		MaxTokens:   openai.Int(reviewMaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("error al generar la review: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("respuesta vacía de la IA")
	}
	return completion.Choices[0].Message.Content, nil
}

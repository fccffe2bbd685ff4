package openai

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
)

// OpenAIProviderFactory implementa AIProviderFactory para OpenAI
type OpenAIProviderFactory struct{}

// NewOpenAIProviderFactory crea una nueva factory para OpenAI
func NewOpenAIProviderFactory() *OpenAIProviderFactory {
	return &OpenAIProviderFactory{}
}

// CreateReviewGenerator crea el generador de reviews de OpenAI
func (f *OpenAIProviderFactory) CreateReviewGenerator(
	_ context.Context,
	cfg *config.Config,
	trans *i18n.Translations,
) (ports.ReviewGenerator, error) {
	return NewOpenAIReviewGenerator(cfg, trans)
}

// Name retorna el nombre del proveedor
func (f *OpenAIProviderFactory) Name() string {
	return "openai"
}

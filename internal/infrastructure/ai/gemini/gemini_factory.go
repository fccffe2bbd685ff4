package gemini

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
)

// GeminiProviderFactory implementa AIProviderFactory para Gemini
type GeminiProviderFactory struct{}

// NewGeminiProviderFactory crea una nueva factory para Gemini
func NewGeminiProviderFactory() *GeminiProviderFactory {
	return &GeminiProviderFactory{}
}

// CreateReviewGenerator crea el generador de reviews de Gemini
func (f *GeminiProviderFactory) CreateReviewGenerator(
	ctx context.Context,
	cfg *config.Config,
	trans *i18n.Translations,
) (ports.ReviewGenerator, error) {
	return NewGeminiReviewGenerator(ctx, cfg, trans)
}

// Name retorna el nombre del proveedor
func (f *GeminiProviderFactory) Name() string {
	return "gemini"
}

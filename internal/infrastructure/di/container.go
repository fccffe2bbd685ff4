package di

import (
	"context"
	"errors"

	"github.com/Tomas-vilte/MateReview/internal/config"
	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	airegistry "github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/registry"
	vcsregistry "github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/registry"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/Tomas-vilte/MateReview/internal/services"
)

// Container gestiona las dependencias de la aplicación
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	// Registries
	aiRegistry  *airegistry.AIProviderRegistry
	vcsRegistry *vcsregistry.VCSProviderRegistry

	// Services (lazy initialized)
	reviewService ports.ReviewService
}

// NewContainer crea un nuevo contenedor de dependencias
func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:       cfg,
		translations: trans,
		aiRegistry:   airegistry.NewAIProviderRegistry(),
		vcsRegistry:  vcsregistry.NewVCSProviderRegistry(),
	}
}

// RegisterAIProvider registra un proveedor de IA
func (c *Container) RegisterAIProvider(name string, factory airegistry.AIProviderFactory) error {
	return c.aiRegistry.Register(name, factory)
}

// RegisterVCSProvider registra un proveedor VCS
func (c *Container) RegisterVCSProvider(name string, factory vcsregistry.VCSProviderFactory) error {
	return c.vcsRegistry.Register(name, factory)
}

// GetVCSRegistry retorna el registro de proveedores VCS
func (c *Container) GetVCSRegistry() *vcsregistry.VCSProviderRegistry {
	return c.vcsRegistry
}

// GetReviewService construye (una sola vez) el servicio de reviews.
// Si la clave del proveedor de IA activo no está configurada, el servicio se
// crea igual con el generador ausente: el proceso arranca y cada review
// falla con un error claro de proveedor no configurado.
func (c *Container) GetReviewService(ctx context.Context) (ports.ReviewService, error) {
	if c.reviewService != nil {
		return c.reviewService, nil
	}

	factory, err := c.aiRegistry.Get(string(c.config.ActiveAIProvider))
	if err != nil {
		return nil, err
	}

	reviewer, err := factory.CreateReviewGenerator(ctx, c.config, c.translations)
	if err != nil {
		var notConfigured *domainerrors.AIProviderNotConfiguredError
		if !errors.As(err, &notConfigured) {
			return nil, err
		}
		logger.Warn(ctx, "proveedor de IA sin configurar, las reviews van a fallar", "provider", c.config.ActiveAIProvider)
		reviewer = nil
	}

	c.reviewService = services.NewReviewService(c.config, c.translations, c.vcsRegistry, reviewer)
	return c.reviewService, nil
}

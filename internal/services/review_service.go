package services

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/config"
	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai"
	vcsregistry "github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/registry"
	"github.com/Tomas-vilte/MateReview/internal/logger"
)

var _ ports.ReviewService = (*ReviewService)(nil)

// ReviewService orquesta el pipeline completo: parseo de la URL, fetch del PR,
// armado del prompt, llamada al modelo, reconciliación y publicación.
// No guarda estado entre requests.
type ReviewService struct {
	cfg         *config.Config
	trans       *i18n.Translations
	vcsRegistry *vcsregistry.VCSProviderRegistry
	reviewer    ports.ReviewGenerator
}

// NewReviewService crea el servicio de reviews. reviewer puede ser nil si el
// proveedor de IA no está configurado; en ese caso cada review falla con un
// error de proveedor no configurado, pero el servidor sigue levantado.
func NewReviewService(
	cfg *config.Config,
	trans *i18n.Translations,
	vcsRegistry *vcsregistry.VCSProviderRegistry,
	reviewer ports.ReviewGenerator,
) *ReviewService {
	return &ReviewService{
		cfg:         cfg,
		trans:       trans,
		vcsRegistry: vcsRegistry,
		reviewer:    reviewer,
	}
}

func (s *ReviewService) ReviewPR(ctx context.Context, prURL, token string) (models.ReviewResult, error) {
	ref, err := ParsePRReference(prURL)
	if err != nil {
		return models.ReviewResult{}, err
	}

	if token == "" {
		token = s.cfg.GitHubToken
	}
	if token == "" {
		return models.ReviewResult{}, domainerrors.NewMissingTokenError()
	}

	ctx = logger.With(ctx, "owner", ref.Owner, "repo", ref.Repo, "pr", ref.Number)

	factory, err := s.vcsRegistry.Get("github")
	if err != nil {
		return models.ReviewResult{}, err
	}

	vcsClient, err := factory.CreateClient(ctx, ref.Owner, ref.Repo, token, s.trans)
	if err != nil {
		return models.ReviewResult{}, err
	}

	opts := models.FetchOptions{
		MaxFiles:        s.cfg.MaxFiles,
		MaxCharsPerFile: s.cfg.MaxCharsPerFile,
	}
	prData, err := vcsClient.GetPRData(ctx, ref.Number, opts)
	if err != nil {
		return models.ReviewResult{}, domainerrors.NewPRFetchError(ref.Owner, ref.Repo, ref.Number, err)
	}
	logger.Debug(ctx, "PR obtenido", "files", len(prData.Files))

	provider := string(s.cfg.ActiveAIProvider)
	if s.reviewer == nil {
		err := domainerrors.NewAIProviderNotConfiguredError(provider, s.trans.GetMessage("error_missing_api_key", 0, map[string]interface{}{"Provider": provider}))
		return models.ReviewResult{}, domainerrors.NewCompletionError(provider, err)
	}

	prompt := ai.BuildReviewPrompt(prData)
	rawText, err := s.reviewer.GenerateReview(ctx, prompt)
	if err != nil {
		return models.ReviewResult{}, domainerrors.NewCompletionError(provider, err)
	}

	verdict := ParseVerdict(rawText)

	// La review se publica siempre, incluso con comments vacíos: un veredicto
	// sin comentarios igual lleva el summary. Los labels van después y solo
	// si la intersección con el allow-list no queda vacía.
	body := FormatReviewBody(verdict)
	receipt, err := vcsClient.PostReview(ctx, ref.Number, body)
	if err != nil {
		return models.ReviewResult{Verdict: verdict}, domainerrors.NewPublishError("review", verdict, err)
	}
	logger.Info(ctx, "review publicada", "review_id", receipt.ID)

	var applied []string
	if labels := FilterLabels(verdict.Labels); len(labels) > 0 {
		applied, err = vcsClient.AddLabels(ctx, ref.Number, labels)
		if err != nil {
			return models.ReviewResult{Verdict: verdict, Receipt: &receipt}, domainerrors.NewPublishError("labels", verdict, err)
		}
		logger.Info(ctx, "etiquetas aplicadas", "labels", len(applied))
	}

	return models.ReviewResult{
		Verdict:       verdict,
		Receipt:       &receipt,
		AppliedLabels: applied,
	}, nil
}

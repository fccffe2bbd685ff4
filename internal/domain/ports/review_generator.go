package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// ReviewGenerator define la interfaz para el servicio de IA que genera la review.
// Devuelve el texto crudo del modelo; el reconciliador se encarga de interpretarlo.
type ReviewGenerator interface {
	GenerateReview(ctx context.Context, prompt []models.PromptMessage) (string, error)
}

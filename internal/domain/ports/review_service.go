package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// ReviewService define la interfaz del pipeline completo de review automática.
type ReviewService interface {
	// ReviewPR parsea la URL, baja el PR, genera la review con IA y la
	// publica en el proveedor junto con las etiquetas permitidas.
	ReviewPR(ctx context.Context, prURL, token string) (models.ReviewResult, error)
}

package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// VCSClient define los métodos comunes para interactuar con las APIs de los sistemas de control de versiones.
// El cliente queda ligado a un owner/repo al construirse; el número de PR viaja por llamada.
type VCSClient interface {
	// GetPRData obtiene los metadatos del PR y sus archivos modificados,
	// ya limitados y truncados según opts.
	GetPRData(ctx context.Context, prNumber int, opts models.FetchOptions) (models.PRData, error)

	// PostReview publica el cuerpo de la review como comentario de review en el PR.
	PostReview(ctx context.Context, prNumber int, body string) (models.ReviewReceipt, error)

	// AddLabels agrega etiquetas al PR. Los labels ya vienen filtrados por el allow-list.
	AddLabels(ctx context.Context, prNumber int, labels []string) ([]string, error)
}

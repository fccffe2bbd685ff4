package errors

import (
	"fmt"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// InvalidPRURLError indica que la URL no contiene una referencia de PR reconocible
type InvalidPRURLError struct {
	Input string
}

func (e *InvalidPRURLError) Error() string {
	return fmt.Sprintf("la URL '%s' no es una referencia de PR válida (se espera https://github.com/owner/repo/pull/123)", e.Input)
}

// NewInvalidPRURLError crea un nuevo error de URL inválida
func NewInvalidPRURLError(input string) *InvalidPRURLError {
	return &InvalidPRURLError{Input: input}
}

// MissingTokenError indica que no hay token ni en el request ni en la configuración
type MissingTokenError struct{}

func (e *MissingTokenError) Error() string {
	return "no hay token de GitHub: configurá GITHUB_TOKEN o mandá el token en el request"
}

// NewMissingTokenError crea un nuevo error de token faltante
func NewMissingTokenError() *MissingTokenError {
	return &MissingTokenError{}
}

// PRFetchError indica que falló la consulta del PR o de su lista de archivos
type PRFetchError struct {
	Owner  string
	Repo   string
	Number int
	Err    error
}

func (e *PRFetchError) Error() string {
	return fmt.Sprintf("no se pudo obtener el PR %s/%s#%d: %v", e.Owner, e.Repo, e.Number, e.Err)
}

func (e *PRFetchError) Unwrap() error {
	return e.Err
}

// NewPRFetchError crea un nuevo error de fetch de PR
func NewPRFetchError(owner, repo string, number int, err error) *PRFetchError {
	return &PRFetchError{Owner: owner, Repo: repo, Number: number, Err: err}
}

// AIProviderNotFoundError indica que un proveedor de IA no fue encontrado
type AIProviderNotFoundError struct {
	Provider string
}

func (e *AIProviderNotFoundError) Error() string {
	return fmt.Sprintf("Proveedor de IA '%s' no encontrado en el registro", e.Provider)
}

// NewAIProviderNotFoundError crea un nuevo error de proveedor no encontrado
func NewAIProviderNotFoundError(provider string) *AIProviderNotFoundError {
	return &AIProviderNotFoundError{Provider: provider}
}

// AIProviderNotConfiguredError indica que un proveedor de IA no está configurado
type AIProviderNotConfiguredError struct {
	Provider string
	Reason   string
}

func (e *AIProviderNotConfiguredError) Error() string {
	return fmt.Sprintf("Proveedor IA '%s' no configurado: %s", e.Provider, e.Reason)
}

// NewAIProviderNotConfiguredError crea un nuevo error de proveedor no configurado
func NewAIProviderNotConfiguredError(provider, reason string) *AIProviderNotConfiguredError {
	return &AIProviderNotConfiguredError{
		Provider: provider,
		Reason:   reason,
	}
}

// CompletionError indica que falló la llamada al servicio de completions
type CompletionError struct {
	Provider string
	Err      error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("la generación de la review con '%s' falló: %v", e.Provider, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// NewCompletionError crea un nuevo error de completions
func NewCompletionError(provider string, err error) *CompletionError {
	return &CompletionError{Provider: provider, Err: err}
}

// PublishError indica que falló la publicación de la review o de las etiquetas.
// Conserva el veredicto ya calculado para que el caller no pierda el contenido.
type PublishError struct {
	Stage   string // "review" o "labels"
	Verdict models.ReviewVerdict
	Err     error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("no se pudo publicar (%s) en GitHub: %v", e.Stage, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// NewPublishError crea un nuevo error de publicación
func NewPublishError(stage string, verdict models.ReviewVerdict, err error) *PublishError {
	return &PublishError{Stage: stage, Verdict: verdict, Err: err}
}

// VCSProviderNotSupportedError indica que el proveedor VCS no está soportado
type VCSProviderNotSupportedError struct {
	Provider string
}

func (e *VCSProviderNotSupportedError) Error() string {
	return fmt.Sprintf("proveedor VCS '%s' no soportado", e.Provider)
}

// NewVCSProviderNotSupportedError crea un nuevo error de proveedor VCS no soportado
func NewVCSProviderNotSupportedError(provider string) *VCSProviderNotSupportedError {
	return &VCSProviderNotSupportedError{Provider: provider}
}

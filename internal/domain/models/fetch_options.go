package models

const (
	// DefaultMaxFiles limita cuántos archivos del PR se mandan al modelo.
	DefaultMaxFiles = 5

	// DefaultMaxCharsPerFile limita el contenido crudo de cada archivo.
	DefaultMaxCharsPerFile = 2000

	// TruncationMarker se agrega al final de un excerpt recortado.
	TruncationMarker = "\n\n...TRUNCATED..."

	// FailedFetchPlaceholder reemplaza el contenido de un archivo que no se pudo bajar.
	FailedFetchPlaceholder = "<<failed to fetch file contents>>"
)

// FetchOptions controla los límites del fetch de archivos del PR.
type FetchOptions struct {
	MaxFiles        int
	MaxCharsPerFile int
}

// DefaultFetchOptions retorna los límites por defecto.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		MaxFiles:        DefaultMaxFiles,
		MaxCharsPerFile: DefaultMaxCharsPerFile,
	}
}

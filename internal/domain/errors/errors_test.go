package errors

import (
	"errors"
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPRFetchError_Unwrap(t *testing.T) {
	cause := errors.New("404 Not Found")
	err := NewPRFetchError("acme", "widgets", 7, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "acme/widgets#7")
	assert.Contains(t, err.Error(), "404 Not Found")
}

func TestCompletionError_Unwrap(t *testing.T) {
	cause := NewAIProviderNotConfiguredError("openai", "falta la API key")
	err := NewCompletionError("openai", cause)

	var notConfigured *AIProviderNotConfiguredError
	require.True(t, errors.As(err, &notConfigured))
	assert.Equal(t, "openai", notConfigured.Provider)
}

func TestPublishError_KeepsVerdict(t *testing.T) {
	cause := errors.New("403 Forbidden")
	verdict := models.ReviewVerdict{Summary: "precious verdict"}
	err := NewPublishError("labels", verdict, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "labels", err.Stage)
	assert.Equal(t, "precious verdict", err.Verdict.Summary)
	assert.Contains(t, err.Error(), "labels")
}

func TestConfigError_WithAndWithoutCause(t *testing.T) {
	withCause := NewConfigError("github_token", "token inválido", errors.New("eof"))
	assert.Contains(t, withCause.Error(), "github_token")
	assert.Contains(t, withCause.Error(), "eof")

	withoutCause := NewConfigError("language", "idioma no soportado", nil)
	assert.Contains(t, withoutCause.Error(), "language")
	assert.NoError(t, withoutCause.Unwrap())
}

func TestInvalidPRURLError_IncludesInput(t *testing.T) {
	err := NewInvalidPRURLError("not a url")
	assert.Contains(t, err.Error(), "not a url")
}

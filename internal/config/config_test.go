package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_CreatesDefaultWhenMissing(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	home := t.TempDir()

	cfg, err := LoadConfig(home)

	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, AIOpenAI, cfg.ActiveAIProvider)
	assert.Equal(t, 5, cfg.MaxFiles)
	assert.Equal(t, 2000, cfg.MaxCharsPerFile)

	expectedPath := filepath.Join(home, ".mate-review", "config.json")
	assert.Equal(t, expectedPath, cfg.PathFile)
	assert.FileExists(t, expectedPath)
}

func TestLoadConfig_ReadsExistingFile(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	home := t.TempDir()
	configDir := filepath.Join(home, ".mate-review")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	existing := Config{
		Language:         "es",
		ServerAddr:       ":5001",
		GitHubToken:      "file-token",
		ActiveAIProvider: AIGemini,
		AIProviders: map[AI]AIProviderConfig{
			AIGemini: {APIKey: "gem-key", Model: ModelGeminiV25Pro},
		},
		MaxFiles:        3,
		MaxCharsPerFile: 500,
	}
	data, err := json.Marshal(existing)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.json"), data, 0600))

	cfg, err := LoadConfig(home)

	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, ":5001", cfg.ServerAddr)
	assert.Equal(t, "file-token", cfg.GitHubToken)
	assert.Equal(t, AIGemini, cfg.ActiveAIProvider)
	assert.Equal(t, 3, cfg.MaxFiles)
	assert.Equal(t, 500, cfg.MaxCharsPerFile)
	assert.Equal(t, ModelGeminiV25Pro, cfg.ModelFor(AIGemini))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	t.Setenv("OPENAI_API_KEY", "env-openai-key")
	t.Setenv("GEMINI_API_KEY", "")
	home := t.TempDir()

	cfg, err := LoadConfig(home)

	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.GitHubToken)
	assert.Equal(t, "env-openai-key", cfg.AIProviders[AIOpenAI].APIKey)
	assert.Equal(t, ModelGPTV4oMini, cfg.AIProviders[AIOpenAI].Model)
}

func TestLoadConfig_FileTokenWinsOverEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	home := t.TempDir()
	configDir := filepath.Join(home, ".mate-review")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	data := []byte(`{"language": "en", "github_token": "file-token", "active_ai_provider": "openai"}`)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.json"), data, 0600))

	cfg, err := LoadConfig(home)

	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.GitHubToken)
}

func TestLoadConfig_UnsupportedProvider(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	home := t.TempDir()
	configDir := filepath.Join(home, ".mate-review")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	data := []byte(`{"language": "en", "active_ai_provider": "skynet"}`)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.json"), data, 0600))

	_, err := LoadConfig(home)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "skynet")
}

func TestModelFor_FallsBackToProviderDefault(t *testing.T) {
	cfg := &Config{
		ActiveAIProvider: AIGemini,
		AIProviders:      map[AI]AIProviderConfig{},
	}
	assert.Equal(t, ModelGeminiV25Flash, cfg.ModelFor(AIGemini))
	assert.Equal(t, ModelGPTV4oMini, cfg.ModelFor(AIOpenAI))

	cfg.AIProviders[AIGemini] = AIProviderConfig{Model: ModelGeminiV25Pro}
	assert.Equal(t, ModelGeminiV25Pro, cfg.ModelFor(AIGemini))
}

func TestSaveConfig_RequiresPath(t *testing.T) {
	err := SaveConfig(&Config{})
	require.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	home := t.TempDir()

	cfg, err := LoadConfig(home)
	require.NoError(t, err)

	cfg.Language = "es"
	cfg.MaxFiles = 10
	require.NoError(t, SaveConfig(cfg))

	reloaded, err := LoadConfig(cfg.PathFile)
	require.NoError(t, err)
	assert.Equal(t, "es", reloaded.Language)
	assert.Equal(t, 10, reloaded.MaxFiles)
}

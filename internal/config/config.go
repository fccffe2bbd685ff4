package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type (
	Config struct {
		Language         string                  `json:"language"`
		ServerAddr       string                  `json:"server_addr"`
		GitHubToken      string                  `json:"github_token,omitempty"`
		ActiveAIProvider AI                      `json:"active_ai_provider"`
		AIProviders      map[AI]AIProviderConfig `json:"ai_providers"`
		MaxFiles         int                     `json:"max_files"`
		MaxCharsPerFile  int                     `json:"max_chars_per_file"`
		PathFile         string                  `json:"path_file"`
	}

	AIProviderConfig struct {
		APIKey string `json:"api_key,omitempty"`
		Model  Model  `json:"model,omitempty"`
	}
)

const (
	defaultLang            = "en"
	defaultServerAddr      = ":8080"
	defaultMaxFiles        = 5
	defaultMaxCharsPerFile = 2000
)

// LoadConfig carga la configuración desde disco y aplica los overrides de
// entorno una sola vez. Las credenciales quedan fijas por la vida del proceso.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".mate-review")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	config.PathFile = configPath
	applyDefaults(&config)
	applyEnvOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:         defaultLang,
		ServerAddr:       defaultServerAddr,
		ActiveAIProvider: AIOpenAI,
		AIProviders:      map[AI]AIProviderConfig{},
		MaxFiles:         defaultMaxFiles,
		MaxCharsPerFile:  defaultMaxCharsPerFile,
		PathFile:         path,
	}
	applyEnvOverrides(config)

	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig persiste la configuración en su PathFile.
func SaveConfig(config *Config) error {
	if config.PathFile == "" {
		return fmt.Errorf("la configuración no tiene ruta de archivo asociada")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al serializar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0600); err != nil {
		return fmt.Errorf("error al escribir el archivo de configuración: %w", err)
	}
	return nil
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.ServerAddr == "" {
		config.ServerAddr = defaultServerAddr
	}
	if config.ActiveAIProvider == "" {
		config.ActiveAIProvider = AIOpenAI
	}
	if config.AIProviders == nil {
		config.AIProviders = map[AI]AIProviderConfig{}
	}
	if config.MaxFiles <= 0 {
		config.MaxFiles = defaultMaxFiles
	}
	if config.MaxCharsPerFile <= 0 {
		config.MaxCharsPerFile = defaultMaxCharsPerFile
	}
}

func applyEnvOverrides(config *Config) {
	if config.GitHubToken == "" {
		config.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}

	envKeys := map[AI]string{
		AIOpenAI: "OPENAI_API_KEY",
		AIGemini: "GEMINI_API_KEY",
	}
	for provider, envKey := range envKeys {
		if key := os.Getenv(envKey); key != "" {
			providerCfg := config.AIProviders[provider]
			if providerCfg.APIKey == "" {
				providerCfg.APIKey = key
			}
			if providerCfg.Model == "" {
				providerCfg.Model = DefaultModelForAI(provider)
			}
			config.AIProviders[provider] = providerCfg
		}
	}
}

func validateConfig(config *Config) error {
	supported := false
	for _, ai := range SupportedAIs() {
		if config.ActiveAIProvider == ai {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("proveedor de IA '%s' no soportado", config.ActiveAIProvider)
	}
	return nil
}

// ModelFor retorna el modelo configurado para un proveedor,
// o el default del proveedor si no hay ninguno.
func (c *Config) ModelFor(provider AI) Model {
	if providerCfg, ok := c.AIProviders[provider]; ok && providerCfg.Model != "" {
		return providerCfg.Model
	}
	return DefaultModelForAI(provider)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// CorpusConfig selects where the document corpus comes from. An empty path
// means the builtin corpus.
type CorpusConfig struct {
	Path string `yaml:"path,omitempty"`
}

// RetrievalConfig configures document ranking.
type RetrievalConfig struct {
	TopK int `yaml:"top_k" validate:"gte=0"`
}

// OpenAIConfig holds settings for the OpenAI-compatible generator.
type OpenAIConfig struct {
	BaseURL     string  `yaml:"base_url"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// AnthropicConfig holds settings for the Anthropic generator.
type AnthropicConfig struct {
	APIKeyEnv string `yaml:"api_key_env"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// ComposerConfig selects and configures the response composition strategy.
type ComposerConfig struct {
	Strategy    string           `yaml:"strategy" validate:"oneof=rulebased openai anthropic"`
	Bullet      string           `yaml:"bullet,omitempty"`
	TimeoutSecs int              `yaml:"timeout_secs" validate:"gte=0"`
	OpenAI      *OpenAIConfig    `yaml:"openai,omitempty"`
	Anthropic   *AnthropicConfig `yaml:"anthropic,omitempty"`
}

// StorageConfig selects where children and chat history are kept.
type StorageConfig struct {
	Type string `yaml:"type" validate:"oneof=memory sqlite"`
	Path string `yaml:"path,omitempty"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Composer  ComposerConfig  `yaml:"composer"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
}

var validate = validator.New()

// Validate checks the configuration against its constraints.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Storage.Type == "sqlite" && c.Storage.Path == "" {
		return errors.New("invalid config: storage type sqlite requires a path")
	}
	return nil
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/babysteps/config.yaml.
// If neither exists, it writes defaults to ~/.config/babysteps/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "babysteps", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Retrieval: RetrievalConfig{TopK: 3},
		Composer:  ComposerConfig{Strategy: "rulebased", TimeoutSecs: 30},
		Storage:   StorageConfig{Type: "sqlite", Path: defaultStoragePath()},
		Log:       LogConfig{Level: "info"},
	}
}

// defaultStoragePath puts the database next to the user config so child
// profiles and chat history survive across invocations out of the box.
func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "babysteps.db"
	}
	return filepath.Join(home, ".config", "babysteps", "babysteps.db")
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 3
	}
	if cfg.Composer.Strategy == "" {
		cfg.Composer.Strategy = "rulebased"
	}
	if cfg.Composer.TimeoutSecs == 0 {
		cfg.Composer.TimeoutSecs = 30
	}
	if cfg.Composer.Strategy == "openai" && cfg.Composer.OpenAI != nil {
		if cfg.Composer.OpenAI.BaseURL == "" {
			cfg.Composer.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Composer.OpenAI.APIKeyEnv == "" {
			cfg.Composer.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Composer.OpenAI.Model == "" {
			cfg.Composer.OpenAI.Model = "gpt-4o-mini"
		}
		if cfg.Composer.OpenAI.MaxTokens == 0 {
			cfg.Composer.OpenAI.MaxTokens = 500
		}
	}
	if cfg.Composer.Strategy == "anthropic" && cfg.Composer.Anthropic != nil {
		if cfg.Composer.Anthropic.APIKeyEnv == "" {
			cfg.Composer.Anthropic.APIKeyEnv = "ANTHROPIC_API_KEY"
		}
		if cfg.Composer.Anthropic.Model == "" {
			cfg.Composer.Anthropic.Model = "claude-3-5-haiku-latest"
		}
		if cfg.Composer.Anthropic.MaxTokens == 0 {
			cfg.Composer.Anthropic.MaxTokens = 500
		}
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "sqlite"
	}
	if cfg.Storage.Type == "sqlite" && cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultStoragePath()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

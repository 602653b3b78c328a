package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "rulebased", cfg.Composer.Strategy)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
	assert.Equal(t, "info", cfg.Log.Level)

	// Profiles must survive across invocations without any hand-written
	// config, so the default store is file-backed.
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.NotEmpty(t, cfg.Storage.Path)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("composer:\n  strategy: openai\n  openai:\n    model: gpt-4o\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Composer.Strategy)
	assert.Equal(t, "gpt-4o", cfg.Composer.OpenAI.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Composer.OpenAI.BaseURL)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Composer.OpenAI.APIKeyEnv)
	assert.Equal(t, 30, cfg.Composer.TimeoutSecs)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
}

func TestLoad_RejectsUnknownStrategy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("composer:\n  strategy: psychic\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_FillsSqlitePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  type: sqlite\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Storage.Path)
}

func TestValidate_RejectsSqliteWithoutPath(t *testing.T) {
	cfg := defaultConfig()
	cfg.Storage = StorageConfig{Type: "sqlite"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := defaultConfig()
	cfg.Composer.Strategy = "anthropic"
	cfg.Composer.Anthropic = &AnthropicConfig{Model: "claude-3-5-haiku-latest"}
	cfg.Storage = StorageConfig{Type: "sqlite", Path: "babysteps.db"}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", got.Composer.Strategy)
	assert.Equal(t, "sqlite", got.Storage.Type)
	assert.Equal(t, "babysteps.db", got.Storage.Path)
	assert.Equal(t, "ANTHROPIC_API_KEY", got.Composer.Anthropic.APIKeyEnv)
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, defaultConfig().Validate())
}

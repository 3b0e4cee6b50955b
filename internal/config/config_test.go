package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Empty(t, cfg.LLM.BaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1/chat/completions")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "llama3")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "http://localhost:11434/v1/chat/completions", cfg.LLM.BaseURL)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "llama3", cfg.LLM.Model)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local settings\nDOTENV_TEST_MODEL=\"gpt-4o\"\n\nDOTENV_TEST_PRESET=file-value\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DOTENV_TEST_PRESET", "env-value")
	os.Unsetenv("DOTENV_TEST_MODEL")
	t.Cleanup(func() { os.Unsetenv("DOTENV_TEST_MODEL") })

	assert.NoError(t, loadDotEnv(path))
	assert.Equal(t, "gpt-4o", os.Getenv("DOTENV_TEST_MODEL"))
	// Existing environment wins over the file.
	assert.Equal(t, "env-value", os.Getenv("DOTENV_TEST_PRESET"))
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}

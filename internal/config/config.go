// Package config assembles runtime configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"bufio"
	"os"
	"strings"
)

const (
	defaultAddr  = ":8080"
	defaultModel = "gpt-4o-mini"
)

// Config holds everything the service needs at startup.
type Config struct {
	Addr string
	LLM  LLMConfig
}

// LLMConfig identifies the model provider endpoint and the model to use.
// The model is fixed at startup; requests cannot override it.
type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// Load reads an optional .env file from the working directory and then
// builds the configuration from environment variables.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	return &Config{
		Addr: getenv("SERVER_ADDR", defaultAddr),
		LLM: LLMConfig{
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getenv("OPENAI_MODEL", defaultModel),
		},
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadDotEnv sets environment variables for each KEY=VALUE line in the
// given file. Empty lines and lines starting with # are skipped.
// Variables already set in the environment win over the file. A missing
// file is not an error.
func loadDotEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		value := strings.TrimSpace(line[i+1:])
		if key == "" {
			continue
		}
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		if _, set := os.LookupEnv(key); !set {
			_ = os.Setenv(key, value)
		}
	}
	return scanner.Err()
}

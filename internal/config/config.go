// Package config resolves the process configuration once at startup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIKey  = "OPENAI_API_KEY"
	EnvBaseURL = "OPENAI_BASE_URL"
	EnvModel   = "QA_JUDGE_MODEL"
)

// DefaultEnvFile is the optional local environment file.
const DefaultEnvFile = ".env"

// Config holds values read from the environment.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Load reads envFile into the process environment, without overriding
// variables that are already set, then builds a Config. A missing env file is
// not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	return &Config{
		APIKey:  os.Getenv(EnvAPIKey),
		BaseURL: os.Getenv(EnvBaseURL),
		Model:   os.Getenv(EnvModel),
	}, nil
}

// Override returns a copy of c with every non-empty argument replacing the
// corresponding field. Command-line flags are applied this way.
func (c Config) Override(apiKey, baseURL, model string) Config {
	if apiKey != "" {
		c.APIKey = apiKey
	}
	if baseURL != "" {
		c.BaseURL = baseURL
	}
	if model != "" {
		c.Model = model
	}
	return c
}

package config

import (
	"cmp"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	APIKey            string
	Provider          string
	Model             string
	OpenAIBaseURL     string
	Port              string
	LogLevel          log.Level
	GenerationTimeout time.Duration
}

// Load reads the configuration from the process environment.
// getenv is usually os.Getenv; tests pass a map lookup.
func Load(getenv func(string) string) (Config, error) {
	cfg := Config{
		APIKey:            getenv("API_KEY"),
		Provider:          strings.ToLower(cmp.Or(getenv("PROVIDER"), ProviderGemini)),
		Model:             getenv("MODEL"),
		OpenAIBaseURL:     getenv("OPENAI_BASE_URL"),
		Port:              cmp.Or(getenv("PORT"), "8080"),
		LogLevel:          log.InfoLevel,
		GenerationTimeout: 2 * time.Minute,
	}

	if lvl := getenv("LOG_LEVEL"); lvl != "" {
		parsed, err := log.ParseLevel(lvl)
		if err != nil {
			return cfg, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = parsed
	}

	if d := getenv("GENERATION_TIMEOUT"); d != "" {
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return cfg, fmt.Errorf("invalid GENERATION_TIMEOUT: %w", err)
		}
		cfg.GenerationTimeout = parsed
	}

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.APIKey == "" {
			return cfg, fmt.Errorf("API_KEY is required for the %s provider", cfg.Provider)
		}
	case ProviderOpenAI:
		if cfg.APIKey == "" && cfg.OpenAIBaseURL == "" {
			cfg.OpenAIBaseURL = "http://localhost:1234/v1"
		}
	default:
		return cfg, fmt.Errorf("unknown PROVIDER %q", cfg.Provider)
	}

	return cfg, nil
}

// FromEnv is Load over os.Getenv.
func FromEnv() (Config, error) {
	return Load(os.Getenv)
}

func (c Config) Addr() string {
	return ":" + c.Port
}

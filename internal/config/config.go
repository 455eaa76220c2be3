// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, response generation, and observability features.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Generator selects the response generation backend.
type Generator string

const (
	// GeneratorRules uses the built-in knowledge-base template composer.
	GeneratorRules Generator = "rules"
	// GeneratorLLM uses the external OpenAI-compatible collaborator.
	GeneratorLLM Generator = "llm"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Response Generation
	Generator          Generator     // "rules" (default) or "llm"
	OpenAIAPIKey       string        // API key for the LLM collaborator (lazy; checked per request)
	OpenAIModel        string        // Model name (default: gpt-5)
	OpenAIBaseURL      string        // Optional OpenAI-compatible endpoint override
	LLMTimeout         time.Duration // Per-request deadline for LLM calls
	LLMMaxOutputTokens int           // Completion token cap for LLM replies

	// Sentry Configuration
	SentryEnabled     bool
	SentryDSN         string
	SentryEnvironment string
	SentryRelease     string
	SentrySampleRate  float64

	// Better Stack Configuration
	BetterStackToken    string
	BetterStackEndpoint string

	// Metrics Authentication
	MetricsUsername string // Username for /metrics endpoint Basic Auth (default: "prometheus")
	MetricsPassword string // Password for /metrics endpoint Basic Auth (empty = no auth)
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		// Server Configuration
		Port:            getEnv(EnvPort, "10000"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, DefaultShutdownTimeout),

		// Response Generation
		Generator:          Generator(getEnv(EnvGenerator, string(GeneratorRules))),
		OpenAIAPIKey:       getEnv(EnvOpenAIAPIKey, ""),
		OpenAIModel:        getEnv(EnvOpenAIModel, "gpt-5"),
		OpenAIBaseURL:      getEnv(EnvOpenAIBaseURL, ""),
		LLMTimeout:         getDurationEnv(EnvLLMTimeout, DefaultLLMTimeout),
		LLMMaxOutputTokens: getIntEnv(EnvLLMMaxOutputTokens, 2048),

		// Sentry Configuration
		SentryEnabled:     getBoolEnv(EnvSentryEnabled, false),
		SentryDSN:         getEnv(EnvSentryDSN, ""),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
		SentryRelease:     getEnv(EnvSentryRelease, ""),
		SentrySampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),

		// Better Stack Configuration
		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),

		// Metrics Authentication
		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New(EnvPort+" is required"))
	}
	switch c.Generator {
	case GeneratorRules, GeneratorLLM:
	default:
		errs = append(errs, fmt.Errorf("%s must be %q or %q, got %q", EnvGenerator, GeneratorRules, GeneratorLLM, c.Generator))
	}
	if c.LLMTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvLLMTimeout, c.LLMTimeout))
	}
	if c.LLMMaxOutputTokens <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvLLMMaxOutputTokens, c.LLMMaxOutputTokens))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvShutdownTimeout, c.ShutdownTimeout))
	}
	if c.SentryEnabled && c.SentryDSN == "" {
		errs = append(errs, errors.New(EnvSentryDSN+" is required when Sentry is enabled"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// UseLLM returns true if the LLM collaborator backend is selected.
// The API key is intentionally not checked here: a missing key surfaces as a
// per-request configuration error, matching the lazy client contract.
func (c *Config) UseLLM() bool {
	return c.Generator == GeneratorLLM
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getBoolEnv retrieves boolean environment variable with fallback to default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

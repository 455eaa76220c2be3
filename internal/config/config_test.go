package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{EnvPort, EnvLogLevel, EnvGenerator, EnvOpenAIAPIKey} {
		_ = os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "10000" {
		t.Errorf("expected default port '10000', got '%s'", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level 'info', got '%s'", cfg.LogLevel)
	}
	if cfg.Generator != GeneratorRules {
		t.Errorf("expected default generator 'rules', got '%s'", cfg.Generator)
	}
	if cfg.OpenAIModel != "gpt-5" {
		t.Errorf("expected default model 'gpt-5', got '%s'", cfg.OpenAIModel)
	}
	if cfg.LLMTimeout != DefaultLLMTimeout {
		t.Errorf("expected default LLM timeout %v, got %v", DefaultLLMTimeout, cfg.LLMTimeout)
	}
	if cfg.LLMMaxOutputTokens != 2048 {
		t.Errorf("expected default max output tokens 2048, got %d", cfg.LLMMaxOutputTokens)
	}
	if cfg.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", DefaultShutdownTimeout, cfg.ShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvGenerator, "llm")
	t.Setenv(EnvOpenAIAPIKey, "sk-test")
	t.Setenv(EnvLLMTimeout, "15s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port '8080', got '%s'", cfg.Port)
	}
	if !cfg.UseLLM() {
		t.Error("expected UseLLM() to be true")
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("expected API key 'sk-test', got '%s'", cfg.OpenAIAPIKey)
	}
	if cfg.LLMTimeout != 15*time.Second {
		t.Errorf("expected LLM timeout 15s, got %v", cfg.LLMTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:        "missing port",
			mutate:      func(c *Config) { c.Port = "" },
			wantErr:     true,
			errContains: EnvPort,
		},
		{
			name:        "unknown generator",
			mutate:      func(c *Config) { c.Generator = "oracle" },
			wantErr:     true,
			errContains: EnvGenerator,
		},
		{
			name:        "non-positive LLM timeout",
			mutate:      func(c *Config) { c.LLMTimeout = 0 },
			wantErr:     true,
			errContains: EnvLLMTimeout,
		},
		{
			name:        "sentry enabled without DSN",
			mutate:      func(c *Config) { c.SentryEnabled = true },
			wantErr:     true,
			errContains: EnvSentryDSN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:               "10000",
				LogLevel:           "info",
				ShutdownTimeout:    DefaultShutdownTimeout,
				Generator:          GeneratorRules,
				LLMTimeout:         DefaultLLMTimeout,
				LLMMaxOutputTokens: 2048,
				SentrySampleRate:   1.0,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestUseLLMIgnoresMissingKey(t *testing.T) {
	// A missing API key is a per-request configuration error, not a startup error.
	cfg := &Config{
		Port:               "10000",
		ShutdownTimeout:    DefaultShutdownTimeout,
		Generator:          GeneratorLLM,
		LLMTimeout:         DefaultLLMTimeout,
		LLMMaxOutputTokens: 2048,
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if !cfg.UseLLM() {
		t.Error("expected UseLLM() to be true without an API key")
	}
}

// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "ASTRA_PORT"
	EnvLogLevel        = "ASTRA_LOG_LEVEL"
	EnvShutdownTimeout = "ASTRA_SHUTDOWN_TIMEOUT"

	// Response generation
	EnvGenerator          = "ASTRA_GENERATOR"
	EnvOpenAIAPIKey       = "OPENAI_API_KEY"
	EnvOpenAIModel        = "ASTRA_OPENAI_MODEL"
	EnvOpenAIBaseURL      = "ASTRA_OPENAI_BASE_URL"
	EnvLLMTimeout         = "ASTRA_LLM_TIMEOUT"
	EnvLLMMaxOutputTokens = "ASTRA_LLM_MAX_OUTPUT_TOKENS"

	// Sentry Feature
	EnvSentryEnabled     = "ASTRA_SENTRY_ENABLED"
	EnvSentryDSN         = "ASTRA_SENTRY_DSN"
	EnvSentryEnvironment = "ASTRA_SENTRY_ENVIRONMENT"
	EnvSentryRelease     = "ASTRA_SENTRY_RELEASE"
	EnvSentrySampleRate  = "ASTRA_SENTRY_SAMPLE_RATE"

	// Better Stack Feature
	EnvBetterStackToken    = "ASTRA_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "ASTRA_BETTERSTACK_ENDPOINT"

	// Metrics Auth Feature
	EnvMetricsUsername = "ASTRA_METRICS_USERNAME"
	EnvMetricsPassword = "ASTRA_METRICS_PASSWORD"
)

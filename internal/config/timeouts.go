package config

import "time"

// HTTP server timeouts. The chat endpoint may wait on an external LLM call,
// so the write timeout leaves headroom above the LLM request timeout.
const (
	// HTTPRead bounds time spent reading a request body.
	HTTPRead = 10 * time.Second

	// HTTPWrite bounds total handler time including LLM generation.
	HTTPWrite = 90 * time.Second

	// HTTPIdle bounds keep-alive idle connections.
	HTTPIdle = 120 * time.Second

	// DefaultLLMTimeout is the per-request deadline for the external LLM call.
	DefaultLLMTimeout = 60 * time.Second

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 30 * time.Second
)

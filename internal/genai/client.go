// Package genai integrates with OpenAI-compatible chat completion APIs
// to generate advisory replies. The deterministic rules engine in
// internal/advisor is the default; this backend is opt-in.
package genai

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/astralabs/astra-advisor-go/internal/config"
	apperrors "github.com/astralabs/astra-advisor-go/internal/errors"
	"github.com/astralabs/astra-advisor-go/internal/logger"
	"github.com/astralabs/astra-advisor-go/internal/storage"
)

// ErrMissingAPIKey reports a configuration problem, not a generation
// failure. It wraps apperrors.ErrConfiguration so callers can treat it
// as a config error without importing this package.
var ErrMissingAPIKey = fmt.Errorf("%w: OpenAI API key is not configured. Please add your OPENAI_API_KEY to continue", apperrors.ErrConfiguration)

// Client generates replies through an OpenAI-compatible chat API. The
// underlying SDK client is created lazily on first use so the server
// can start without an API key; the missing key only surfaces when a
// generation is actually requested.
type Client struct {
	cfg *config.Config
	log *logger.Logger

	mu     sync.Mutex
	client *openai.Client
}

// NewClient creates a generation client. The API key is not checked
// here; see Client docs.
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		cfg: cfg,
		log: log.WithModule("genai"),
	}
}

func (c *Client) getClient() (*openai.Client, error) {
	if c.cfg.OpenAIAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		opts := []option.RequestOption{option.WithAPIKey(c.cfg.OpenAIAPIKey)}
		if c.cfg.OpenAIBaseURL != "" {
			opts = append(opts, option.WithBaseURL(c.cfg.OpenAIBaseURL))
		}
		client := openai.NewClient(opts...)
		c.client = &client
	}
	return c.client, nil
}

// Generate produces an assistant reply for the conversation. A nil
// profile still works; the model just gets no profile context.
func (c *Client) Generate(ctx context.Context, history []storage.Message, profile *storage.StudentProfile, initialGreeting bool) (string, error) {
	client, err := c.getClient()
	if err != nil {
		return "", err
	}

	messages := buildMessages(history, profile, initialGreeting)

	params := openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(c.cfg.OpenAIModel),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(int64(c.cfg.LLMMaxOutputTokens)),
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.LLMTimeout)
	defer cancel()

	start := time.Now()
	resp, err := client.Chat.Completions.New(ctx, params)
	duration := time.Since(start)

	if err != nil {
		c.log.Error("chat completion failed",
			"model", c.cfg.OpenAIModel,
			"turns", len(history),
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if resp.Usage.TotalTokens > 0 {
		c.log.Debug("chat completion finished",
			"model", c.cfg.OpenAIModel,
			"input_tokens", resp.Usage.PromptTokens,
			"output_tokens", resp.Usage.CompletionTokens,
			"duration_ms", duration.Milliseconds())
	}

	if len(resp.Choices) == 0 {
		return fallbackReply, nil
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return fallbackReply, nil
	}
	return content, nil
}

// buildMessages assembles the system prompts and conversation turns in
// the order the model expects: persona, profile context, optional
// greeting instruction, then the conversation.
func buildMessages(history []storage.Message, profile *storage.StudentProfile, initialGreeting bool) []openai.ChatCompletionMessageParamUnion {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
	}

	if profile != nil {
		messages = append(messages, openai.SystemMessage(buildProfileContext(profile)))

		if initialGreeting {
			messages = append(messages, openai.SystemMessage(greetingInstruction))
		}
	}

	if len(history) == 0 {
		return append(messages, openai.UserMessage(defaultUserTurn))
	}

	for _, m := range history {
		switch m.Role {
		case storage.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	return messages
}

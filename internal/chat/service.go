// Package chat orchestrates the advisory conversation flow: resolving
// the conversation and profile, appending the user turn, generating a
// reply, and recording the assistant turn.
package chat

import (
	"context"
	"time"

	"github.com/astralabs/astra-advisor-go/internal/advisor"
	apperrors "github.com/astralabs/astra-advisor-go/internal/errors"
	"github.com/astralabs/astra-advisor-go/internal/logger"
	"github.com/astralabs/astra-advisor-go/internal/metrics"
	"github.com/astralabs/astra-advisor-go/internal/storage"
)

// Generator backends.
const (
	BackendRules = "rules"
	BackendLLM   = "llm"
)

// Generator produces an assistant reply from the conversation history
// and the student profile.
type Generator interface {
	Generate(ctx context.Context, history []storage.Message, profile *storage.StudentProfile, initialGreeting bool) (string, error)
}

// RulesGenerator is the deterministic template backend.
type RulesGenerator struct{}

// Generate composes the reply from the knowledge tables. It never fails.
func (RulesGenerator) Generate(_ context.Context, history []storage.Message, profile *storage.StudentProfile, initialGreeting bool) (string, error) {
	reply, _ := advisor.ComposeReply(history, profile, initialGreeting)
	return reply, nil
}

// Request is one chat turn. An empty ConversationID starts a new
// conversation; an empty Message on a fresh conversation requests the
// initial greeting.
type Request struct {
	Message        string
	ConversationID string
	Profile        *storage.StudentProfile
}

// Response carries the stored assistant message and the conversation it
// belongs to.
type Response struct {
	Message        storage.Message
	ConversationID string
}

// Service wires the store and a reply generator together.
type Service struct {
	store   *storage.MemoryStore
	gen     Generator
	backend string
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewService creates the chat service. backend names the generator for
// logs and metrics (BackendRules or BackendLLM).
func NewService(store *storage.MemoryStore, gen Generator, backend string, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		gen:     gen,
		backend: backend,
		log:     log.WithModule("chat"),
		metrics: m,
	}
}

// Chat handles one turn of the conversation.
func (s *Service) Chat(ctx context.Context, req Request) (Response, error) {
	start := time.Now()

	conv, profile, err := s.resolveConversation(req)
	if err != nil {
		return Response{}, err
	}

	initialGreeting := req.Message == "" && len(conv.Messages) == 0

	history := conv.Messages
	if req.Message != "" {
		userMsg, addErr := s.store.AddMessage(conv.ID, storage.RoleUser, req.Message)
		if addErr != nil {
			return Response{}, wrapErr("append_message", addErr, "Failed to record message")
		}
		history = append(history, userMsg)
	}

	mode := "topic"
	if initialGreeting {
		mode = "greeting"
	} else if req.Message != "" {
		s.metrics.RecordTopic(advisor.DetectTopics(req.Message)[0])
	}

	genStart := time.Now()
	reply, err := s.gen.Generate(ctx, history, profile, initialGreeting)
	genDuration := time.Since(genStart)

	if err != nil {
		status := "error"
		if apperrors.IsConfigError(err) {
			status = "config_error"
		}
		s.metrics.RecordGeneration(s.backend, status, genDuration.Seconds())
		s.metrics.RecordChatRequest(mode, "error", time.Since(start).Seconds())
		s.log.Error("reply generation failed",
			"backend", s.backend,
			"conversation_id", conv.ID,
			"error", err)
		return Response{}, wrapErr("generate_reply", err, "Failed to generate response from Astra. Please check your API key and try again.")
	}
	s.metrics.RecordGeneration(s.backend, "success", genDuration.Seconds())

	assistantMsg, err := s.store.AddMessage(conv.ID, storage.RoleAssistant, reply)
	if err != nil {
		return Response{}, wrapErr("append_message", err, "Failed to record message")
	}

	s.metrics.RecordChatRequest(mode, "success", time.Since(start).Seconds())
	s.log.Info("chat turn completed",
		"conversation_id", conv.ID,
		"backend", s.backend,
		"mode", mode,
		"duration_ms", time.Since(start).Milliseconds())

	return Response{Message: assistantMsg, ConversationID: conv.ID}, nil
}

// GetConversation returns the conversation with the given ID.
func (s *Service) GetConversation(id string) (storage.Conversation, error) {
	conv, err := s.store.GetConversation(id)
	if err != nil {
		return storage.Conversation{}, wrapErr("get_conversation", err, "Conversation not found")
	}
	return conv, nil
}

// resolveConversation loads the referenced conversation or starts a new
// one, and resolves the profile that should drive the reply. A request
// naming an unknown conversation is rejected rather than silently
// starting over.
func (s *Service) resolveConversation(req Request) (storage.Conversation, *storage.StudentProfile, error) {
	if req.ConversationID != "" {
		conv, err := s.store.GetConversation(req.ConversationID)
		if err != nil {
			return storage.Conversation{}, nil, wrapErr("get_conversation", err, "Conversation not found")
		}

		if conv.ProfileID == "" {
			return conv, nil, nil
		}
		profile, err := s.store.GetProfile(conv.ProfileID)
		if err != nil {
			return storage.Conversation{}, nil, wrapErr("get_profile", err, "Student profile not found")
		}
		return conv, &profile, nil
	}

	if req.Profile != nil {
		profile := s.store.CreateProfile(*req.Profile)
		conv := s.store.CreateConversation(profile.ID)
		s.log.Info("conversation started",
			"conversation_id", conv.ID,
			"profile_id", profile.ID,
			"grade_level", profile.GradeLevel)
		return conv, &profile, nil
	}

	conv := s.store.CreateConversation("")
	s.log.Info("conversation started", "conversation_id", conv.ID)
	return conv, nil, nil
}

func wrapErr(operation string, err error, userMessage string) error {
	return apperrors.NewWrapper("chat", operation).Wrap(err, userMessage)
}

package chat

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	apperrors "github.com/astralabs/astra-advisor-go/internal/errors"
	"github.com/astralabs/astra-advisor-go/internal/logger"
	"github.com/astralabs/astra-advisor-go/internal/metrics"
	"github.com/astralabs/astra-advisor-go/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestService(gen Generator) (*Service, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	log := logger.NewWithWriter("info", io.Discard)
	m := metrics.New(prometheus.NewRegistry())
	backend := BackendRules
	if gen == nil {
		gen = RulesGenerator{}
	} else {
		backend = BackendLLM
	}
	return NewService(store, gen, backend, log, m), store
}

func testProfile() *storage.StudentProfile {
	return &storage.StudentProfile{
		GradeLevel:         "grade-11",
		IntendedMajors:     []string{"Computer Science"},
		TargetUniversities: []string{"MIT", "Waterloo"},
		CurrentActivities:  "coding club",
		Strengths:          "USACO Silver",
		Weaknesses:         "essays",
	}
}

func TestChatInitialGreeting(t *testing.T) {
	svc, store := newTestService(nil)

	resp, err := svc.Chat(context.Background(), Request{Message: "", Profile: testProfile()})
	if err != nil {
		t.Fatalf("Chat() failed: %v", err)
	}

	if resp.ConversationID == "" {
		t.Fatal("expected a conversation ID")
	}
	if resp.Message.Role != storage.RoleAssistant {
		t.Errorf("expected assistant role, got %s", resp.Message.Role)
	}
	if !strings.Contains(resp.Message.Content, "Welcome to Astra, your College Admissions Advisor!") {
		t.Error("initial greeting expected")
	}

	// Greeting turn stores only the assistant message.
	conv, err := store.GetConversation(resp.ConversationID)
	if err != nil {
		t.Fatal(err)
	}
	if len(conv.Messages) != 1 {
		t.Errorf("expected 1 stored message, got %d", len(conv.Messages))
	}
	if conv.ProfileID == "" {
		t.Error("expected conversation to be linked to the created profile")
	}
}

func TestChatWithoutProfile(t *testing.T) {
	svc, _ := newTestService(nil)

	resp, err := svc.Chat(context.Background(), Request{Message: "hello"})
	if err != nil {
		t.Fatalf("Chat() failed: %v", err)
	}
	if !strings.Contains(resp.Message.Content, "onboarding questionnaire") {
		t.Error("expected the onboarding reply without a profile")
	}
}

func TestChatFollowUpTurn(t *testing.T) {
	svc, store := newTestService(nil)

	first, err := svc.Chat(context.Background(), Request{Message: "", Profile: testProfile()})
	if err != nil {
		t.Fatal(err)
	}

	second, err := svc.Chat(context.Background(), Request{
		Message:        "What competitions should I do?",
		ConversationID: first.ConversationID,
	})
	if err != nil {
		t.Fatalf("Chat() failed: %v", err)
	}
	if second.ConversationID != first.ConversationID {
		t.Error("follow-up must stay in the same conversation")
	}
	if !strings.Contains(second.Message.Content, "USACO") {
		t.Error("expected competition advice for the cs profile")
	}

	conv, _ := store.GetConversation(first.ConversationID)
	if len(conv.Messages) != 3 { // greeting + user + assistant
		t.Errorf("expected 3 stored messages, got %d", len(conv.Messages))
	}
	if conv.Messages[1].Role != storage.RoleUser || conv.Messages[1].Content != "What competitions should I do?" {
		t.Error("user turn not recorded in order")
	}
}

func TestChatUnknownConversation(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.Chat(context.Background(), Request{Message: "hi", ConversationID: "nope"})
	if !apperrors.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestGetConversation(t *testing.T) {
	svc, _ := newTestService(nil)

	resp, err := svc.Chat(context.Background(), Request{Message: "hello"})
	if err != nil {
		t.Fatal(err)
	}

	conv, err := svc.GetConversation(resp.ConversationID)
	if err != nil {
		t.Fatalf("GetConversation() failed: %v", err)
	}
	if len(conv.Messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(conv.Messages))
	}

	if _, err := svc.GetConversation("missing"); !apperrors.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

type failingGenerator struct{ err error }

func (g failingGenerator) Generate(context.Context, []storage.Message, *storage.StudentProfile, bool) (string, error) {
	return "", g.err
}

func TestChatGenerationFailure(t *testing.T) {
	genErr := errors.New("upstream unavailable")
	svc, store := newTestService(failingGenerator{err: genErr})

	resp, err := svc.Chat(context.Background(), Request{Message: "hello"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, genErr) {
		t.Errorf("expected wrapped generator error, got %v", err)
	}
	if resp.ConversationID != "" {
		t.Error("failed turn should not return a conversation")
	}

	// The user turn was already appended before generation failed.
	conversations, _, messages := store.Counts()
	if conversations != 1 || messages != 1 {
		t.Errorf("expected 1 conversation with 1 message, got %d/%d", conversations, messages)
	}
}

func TestChatConfigErrorSurfaces(t *testing.T) {
	svc, _ := newTestService(failingGenerator{err: apperrors.ErrConfiguration})

	_, err := svc.Chat(context.Background(), Request{Message: "hello"})
	if !apperrors.IsConfigError(err) {
		t.Errorf("expected config error to survive wrapping, got %v", err)
	}
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/astralabs/astra-advisor-go/internal/chat"
	apperrors "github.com/astralabs/astra-advisor-go/internal/errors"
	"github.com/astralabs/astra-advisor-go/internal/logger"
	"github.com/astralabs/astra-advisor-go/internal/metrics"
	"github.com/astralabs/astra-advisor-go/internal/storage"
)

func newTestRouter(gen chat.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	log := logger.NewWithWriter("info", io.Discard)
	m := metrics.New(prometheus.NewRegistry())
	if gen == nil {
		gen = chat.RulesGenerator{}
	}
	svc := chat.NewService(store, gen, chat.BackendRules, log, m)
	handler := NewHandler(svc, log, m)

	router := gin.New()
	router.POST("/api/chat", handler.Chat)
	router.GET("/api/conversation/:id", handler.GetConversation)
	return router
}

func postChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatInitialGreeting(t *testing.T) {
	router := newTestRouter(nil)

	w := postChat(t, router, `{
		"message": "",
		"profile": {
			"gradeLevel": "grade-11",
			"intendedMajors": ["Computer Science"],
			"targetUniversities": ["MIT", "Waterloo"],
			"currentActivities": "coding club",
			"strengths": "USACO Silver",
			"weaknesses": "essays",
			"timeline": "2026-2027"
		}
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message        storage.Message `json:"message"`
		ConversationID string          `json:"conversationId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ConversationID == "" {
		t.Error("expected a conversation ID")
	}
	if resp.Message.Role != storage.RoleAssistant {
		t.Errorf("expected assistant message, got role %s", resp.Message.Role)
	}
	if !strings.Contains(resp.Message.Content, "Welcome to Astra") {
		t.Error("expected the greeting reply")
	}
}

func TestChatFollowUpInSameConversation(t *testing.T) {
	router := newTestRouter(nil)

	first := postChat(t, router, `{"message": "hello"}`)
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}

	var firstResp struct {
		ConversationID string `json:"conversationId"`
	}
	if err := json.Unmarshal(first.Body.Bytes(), &firstResp); err != nil {
		t.Fatal(err)
	}

	second := postChat(t, router, `{"message": "thanks", "conversationId": "`+firstResp.ConversationID+`"}`)
	if second.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", second.Code, second.Body.String())
	}

	var secondResp struct {
		ConversationID string `json:"conversationId"`
	}
	if err := json.Unmarshal(second.Body.Bytes(), &secondResp); err != nil {
		t.Fatal(err)
	}
	if secondResp.ConversationID != firstResp.ConversationID {
		t.Error("follow-up should reuse the conversation")
	}
}

func TestChatValidation(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing message", `{}`, "message"},
		{"malformed json", `{`, "body"},
		{"profile missing grade", `{"message": "", "profile": {"intendedMajors": [], "targetUniversities": []}}`, "profile.gradeLevel"},
		{"profile missing majors", `{"message": "", "profile": {"gradeLevel": "grade-11", "targetUniversities": []}}`, "profile.intendedMajors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postChat(t, router, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}

			var resp struct {
				Error   string `json:"error"`
				Details []struct {
					Field string `json:"field"`
				} `json:"details"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Error != "Invalid request" {
				t.Errorf("error = %q", resp.Error)
			}

			found := false
			for _, d := range resp.Details {
				if d.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a detail for field %q, got %s", tt.wantField, w.Body.String())
			}
		})
	}
}

func TestChatUnknownConversation(t *testing.T) {
	router := newTestRouter(nil)

	w := postChat(t, router, `{"message": "hi", "conversationId": "nope"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

type stubGenerator struct{ err error }

func (g stubGenerator) Generate(context.Context, []storage.Message, *storage.StudentProfile, bool) (string, error) {
	return "", g.err
}

func TestChatConfigError(t *testing.T) {
	router := newTestRouter(stubGenerator{err: apperrors.ErrConfiguration})

	w := postChat(t, router, `{"message": "hi"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "OPENAI_API_KEY") {
		t.Errorf("config error should name the missing key, got %s", w.Body.String())
	}
}

func TestChatGenerationFailure(t *testing.T) {
	router := newTestRouter(stubGenerator{err: errors.New("boom")})

	w := postChat(t, router, `{"message": "hi"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Failed to generate response from Astra") {
		t.Errorf("expected the generic failure message, got %s", w.Body.String())
	}
}

func TestGetConversation(t *testing.T) {
	router := newTestRouter(nil)

	created := postChat(t, router, `{"message": "hello"}`)
	var resp struct {
		ConversationID string `json:"conversationId"`
	}
	if err := json.Unmarshal(created.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/conversation/"+resp.ConversationID, http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var conv storage.Conversation
	if err := json.Unmarshal(w.Body.Bytes(), &conv); err != nil {
		t.Fatal(err)
	}
	if len(conv.Messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(conv.Messages))
	}
}

func TestGetConversationNotFound(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/conversation/missing", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Conversation not found") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

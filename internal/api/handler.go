// Package api provides the HTTP handlers for the advisory chat
// endpoints.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astralabs/astra-advisor-go/internal/chat"
	apperrors "github.com/astralabs/astra-advisor-go/internal/errors"
	"github.com/astralabs/astra-advisor-go/internal/logger"
	"github.com/astralabs/astra-advisor-go/internal/metrics"
	"github.com/astralabs/astra-advisor-go/internal/sentry"
	"github.com/astralabs/astra-advisor-go/internal/storage"
)

// missingKeyMessage is what operators see when the LLM backend is
// selected without an API key. Config errors keep their specific
// message; other failures get a generic one.
const missingKeyMessage = "OpenAI API key is not configured. Please add your OPENAI_API_KEY to continue."

// Handler exposes the chat service over HTTP.
type Handler struct {
	svc     *chat.Service
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewHandler creates the API handler.
func NewHandler(svc *chat.Service, log *logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		svc:     svc,
		log:     log.WithModule("api"),
		metrics: m,
	}
}

// chatRequest is the POST /api/chat payload. Message uses a pointer so
// a missing field is distinguishable from the empty string that
// requests the initial greeting.
type chatRequest struct {
	Message        *string         `json:"message"`
	ConversationID string          `json:"conversationId"`
	Profile        *profilePayload `json:"profile"`
}

type profilePayload struct {
	GradeLevel         *string   `json:"gradeLevel"`
	IntendedMajors     *[]string `json:"intendedMajors"`
	TargetUniversities *[]string `json:"targetUniversities"`
	CurrentActivities  string    `json:"currentActivities"`
	Strengths          string    `json:"strengths"`
	Weaknesses         string    `json:"weaknesses"`
	Timeline           string    `json:"timeline"`
}

type fieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (r *chatRequest) validate() []fieldIssue {
	var issues []fieldIssue
	if r.Message == nil {
		issues = append(issues, fieldIssue{Field: "message", Message: "message is required (empty string requests the initial greeting)"})
	}
	if r.Profile != nil {
		if r.Profile.GradeLevel == nil || *r.Profile.GradeLevel == "" {
			issues = append(issues, fieldIssue{Field: "profile.gradeLevel", Message: "gradeLevel is required"})
		}
		if r.Profile.IntendedMajors == nil {
			issues = append(issues, fieldIssue{Field: "profile.intendedMajors", Message: "intendedMajors is required"})
		}
		if r.Profile.TargetUniversities == nil {
			issues = append(issues, fieldIssue{Field: "profile.targetUniversities", Message: "targetUniversities is required"})
		}
	}
	return issues
}

func (p *profilePayload) toProfile() *storage.StudentProfile {
	if p == nil {
		return nil
	}
	profile := &storage.StudentProfile{
		CurrentActivities: p.CurrentActivities,
		Strengths:         p.Strengths,
		Weaknesses:        p.Weaknesses,
		Timeline:          p.Timeline,
	}
	if p.GradeLevel != nil {
		profile.GradeLevel = *p.GradeLevel
	}
	if p.IntendedMajors != nil {
		profile.IntendedMajors = *p.IntendedMajors
	}
	if p.TargetUniversities != nil {
		profile.TargetUniversities = *p.TargetUniversities
	}
	return profile
}

// Chat handles POST /api/chat.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.RecordHTTPError("validation", "chat")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": []fieldIssue{{Field: "body", Message: err.Error()}},
		})
		return
	}

	if issues := req.validate(); len(issues) > 0 {
		h.metrics.RecordHTTPError("validation", "chat")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": issues,
		})
		return
	}

	resp, err := h.svc.Chat(c.Request.Context(), chat.Request{
		Message:        *req.Message,
		ConversationID: req.ConversationID,
		Profile:        req.Profile.toProfile(),
	})
	if err != nil {
		h.renderChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        resp.Message,
		"conversationId": resp.ConversationID,
	})
}

func (h *Handler) renderChatError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		h.metrics.RecordHTTPError("not_found", "chat")
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.GetUserMessage(err)})
	case apperrors.IsConfigError(err):
		h.metrics.RecordHTTPError("config", "chat")
		h.log.WithError(err).Error("chat request failed: missing generation config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": missingKeyMessage})
	default:
		h.metrics.RecordHTTPError("internal", "chat")
		h.log.WithError(err).Error("chat request failed")
		sentry.CaptureExceptionWithContext(c.Request.Context(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.GetUserMessage(err)})
	}
}

// GetConversation handles GET /api/conversation/:id.
func (h *Handler) GetConversation(c *gin.Context) {
	conv, err := h.svc.GetConversation(c.Param("id"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			h.metrics.RecordHTTPError("not_found", "conversation")
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}
		h.metrics.RecordHTTPError("internal", "conversation")
		h.log.WithError(err).Error("conversation lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve conversation"})
		return
	}

	c.JSON(http.StatusOK, conv)
}

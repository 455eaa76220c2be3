// Package storage provides the in-memory conversation store. All data
// is process-local and lost on restart; there is deliberately no
// database behind it.
package storage

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// StudentProfile holds the onboarding answers that drive personalized
// advice.
type StudentProfile struct {
	ID                 string    `json:"id"`
	GradeLevel         string    `json:"gradeLevel"`
	IntendedMajors     []string  `json:"intendedMajors"`
	TargetUniversities []string  `json:"targetUniversities"`
	CurrentActivities  string    `json:"currentActivities"`
	Strengths          string    `json:"strengths"`
	Weaknesses         string    `json:"weaknesses"`
	Timeline           string    `json:"timeline"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Message is a single turn in a conversation.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
}

// Conversation is an ordered message history, optionally tied to a
// student profile.
type Conversation struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profileId,omitempty"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
}

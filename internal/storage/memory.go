package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/astralabs/astra-advisor-go/internal/errors"
)

// MemoryStore keeps profiles and conversations in process memory.
// A store-wide RWMutex guards the maps; each conversation additionally
// carries its own mutex so appends to one conversation are serialized
// without blocking appends to others.
type MemoryStore struct {
	mu            sync.RWMutex
	profiles      map[string]*StudentProfile
	conversations map[string]*conversationEntry
	messageCount  int
}

type conversationEntry struct {
	mu   sync.Mutex // serializes appends to this conversation
	conv *Conversation
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles:      make(map[string]*StudentProfile),
		conversations: make(map[string]*conversationEntry),
	}
}

// CreateProfile stores a new student profile and assigns it an ID.
func (s *MemoryStore) CreateProfile(p StudentProfile) StudentProfile {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := p
	s.profiles[p.ID] = &stored
	return p
}

// GetProfile returns the profile with the given ID.
func (s *MemoryStore) GetProfile(id string) (StudentProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return StudentProfile{}, apperrors.ErrNotFound
	}
	return *p, nil
}

// CreateConversation starts a new empty conversation. profileID may be
// empty for anonymous conversations.
func (s *MemoryStore) CreateConversation(profileID string) Conversation {
	conv := &Conversation{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Messages:  []Message{},
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[conv.ID] = &conversationEntry{conv: conv}
	return snapshot(conv)
}

// GetConversation returns a copy of the conversation with the given ID.
func (s *MemoryStore) GetConversation(id string) (Conversation, error) {
	s.mu.RLock()
	entry, ok := s.conversations[id]
	s.mu.RUnlock()

	if !ok {
		return Conversation{}, apperrors.ErrNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return snapshot(entry.conv), nil
}

// AddMessage appends a message to a conversation and returns the stored
// message. Appends to the same conversation are serialized, so message
// order always reflects append order.
func (s *MemoryStore) AddMessage(conversationID, role, content string) (Message, error) {
	s.mu.RLock()
	entry, ok := s.conversations[conversationID]
	s.mu.RUnlock()

	if !ok {
		return Message{}, apperrors.ErrNotFound
	}

	msg := Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		Timestamp:      time.Now().UTC(),
	}

	entry.mu.Lock()
	entry.conv.Messages = append(entry.conv.Messages, msg)
	entry.mu.Unlock()

	s.mu.Lock()
	s.messageCount++
	s.mu.Unlock()

	return msg, nil
}

// Counts reports the current number of conversations, profiles, and
// messages. Used by the metrics updater.
func (s *MemoryStore) Counts() (conversations, profiles, messages int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations), len(s.profiles), s.messageCount
}

// snapshot copies a conversation so callers never share the live
// message slice with the store.
func snapshot(c *Conversation) Conversation {
	out := *c
	out.Messages = make([]Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	return out
}

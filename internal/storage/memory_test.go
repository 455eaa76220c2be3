package storage

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/astralabs/astra-advisor-go/internal/errors"
)

func TestProfileLifecycle(t *testing.T) {
	store := NewMemoryStore()

	created := store.CreateProfile(StudentProfile{
		GradeLevel:         "grade-11",
		IntendedMajors:     []string{"Computer Science"},
		TargetUniversities: []string{"MIT", "Stanford"},
		Strengths:          "USACO Gold, math club president",
		Weaknesses:         "essays",
	})

	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.GetProfile(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "grade-11", got.GradeLevel)

	_, err = store.GetProfile("missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestConversationLifecycle(t *testing.T) {
	store := NewMemoryStore()

	conv := store.CreateConversation("")
	require.NotEmpty(t, conv.ID)
	assert.Empty(t, conv.Messages)

	_, err := store.AddMessage(conv.ID, RoleUser, "hello")
	require.NoError(t, err)
	_, err = store.AddMessage(conv.ID, RoleAssistant, "hi there")
	require.NoError(t, err)

	got, err := store.GetConversation(conv.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, RoleUser, got.Messages[0].Role)
	assert.Equal(t, RoleAssistant, got.Messages[1].Role)

	_, err = store.AddMessage("missing", RoleUser, "x")
	assert.True(t, apperrors.IsNotFound(err))
	_, err = store.GetConversation("missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSnapshotIsolation(t *testing.T) {
	store := NewMemoryStore()
	conv := store.CreateConversation("")

	_, err := store.AddMessage(conv.ID, RoleUser, "first")
	require.NoError(t, err)

	snap, err := store.GetConversation(conv.ID)
	require.NoError(t, err)
	snap.Messages[0].Content = "mutated"

	fresh, err := store.GetConversation(conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", fresh.Messages[0].Content,
		"mutating a snapshot must not affect the stored conversation")
}

func TestConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()
	conv := store.CreateConversation("")

	const writers = 20
	const perWriter = 10

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				if _, err := store.AddMessage(conv.ID, RoleUser, fmt.Sprintf("w%d-%d", id, j)); err != nil {
					t.Errorf("AddMessage() failed: %v", err)
				}
			}
		}(i)
	}
	wg.Wait()

	got, err := store.GetConversation(conv.ID)
	require.NoError(t, err)
	assert.Len(t, got.Messages, writers*perWriter)

	_, _, messages := store.Counts()
	assert.Equal(t, writers*perWriter, messages)
}

func TestCounts(t *testing.T) {
	store := NewMemoryStore()

	p := store.CreateProfile(StudentProfile{GradeLevel: "grade-10"})
	c := store.CreateConversation(p.ID)
	_, err := store.AddMessage(c.ID, RoleUser, "hi")
	require.NoError(t, err)

	conversations, profiles, messages := store.Counts()
	assert.Equal(t, 1, conversations)
	assert.Equal(t, 1, profiles)
	assert.Equal(t, 1, messages)
}

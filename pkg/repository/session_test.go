package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository(0)

	_, ok := repo.Get("a")
	assert.False(t, ok)

	session := domain.NewSession("a", "en")
	session.Conversation = domain.NewConversation(domain.Turn{Role: domain.RoleUser, Content: "hi"})
	repo.Save(session)

	got, ok := repo.Get("a")
	require.True(t, ok)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, 1, got.Conversation.Len())
	assert.False(t, got.UpdatedAt.IsZero())

	_, ok = repo.Get("b")
	assert.False(t, ok)

	repo.Delete("a")
	_, ok = repo.Get("a")
	assert.False(t, ok)
}

func TestSessionRepositoryTTL(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	repo := NewSessionRepository(15 * time.Minute)
	repo.now = func() time.Time { return now }

	repo.Save(domain.Session{ID: "old", UpdatedAt: now.Add(-time.Hour)})
	repo.Save(domain.Session{ID: "fresh", UpdatedAt: now.Add(-time.Minute)})

	_, ok := repo.Get("old")
	assert.False(t, ok)
	_, ok = repo.Get("fresh")
	assert.True(t, ok)

	assert.Equal(t, 1, repo.Purge())
}

func TestSessionRepositoryConcurrentAccess(t *testing.T) {
	repo := NewSessionRepository(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%5))
			repo.Save(domain.NewSession(id, "it"))
			repo.Get(id)
		}(i)
	}
	wg.Wait()

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		_, ok := repo.Get(id)
		assert.True(t, ok, id)
	}
}

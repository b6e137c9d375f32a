package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type memoryPromptsRepository struct {
	mu      sync.RWMutex
	prompts map[string]string
}

// NewMemoryPromptsRepository is used when no database is configured.
func NewMemoryPromptsRepository() *memoryPromptsRepository {
	return &memoryPromptsRepository{
		prompts: make(map[string]string),
	}
}

func (m *memoryPromptsRepository) Save(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.prompts[id] = prompt

	return id, nil
}

func (m *memoryPromptsRepository) GetByID(_ context.Context, id string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prompt, ok := m.prompts[id]
	if !ok {
		return "", fmt.Errorf("prompt not found for id %s: %w", id, domain.ErrNotFound)
	}

	return prompt, nil
}

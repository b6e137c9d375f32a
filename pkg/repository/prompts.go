package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type promptsRepository struct {
	db *sql.DB
}

func NewPromptsRepository(db *sql.DB) *promptsRepository {
	return &promptsRepository{db: db}
}

func (p *promptsRepository) Save(ctx context.Context, prompt string) (string, error) {
	const query = `
		INSERT INTO prompts (prompt) 
		VALUES ($1) 
		RETURNING id
	`

	var id int64
	if err := p.db.QueryRowContext(ctx, query, prompt).Scan(&id); err != nil {
		return "", fmt.Errorf("saving prompt: %w", err)
	}

	return strconv.FormatInt(id, 10), nil
}

func (p *promptsRepository) GetByID(ctx context.Context, id string) (string, error) {
	const query = `
		SELECT prompt 
		FROM prompts 
		WHERE id = $1
	`

	promptID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid prompt id %q: %w", id, domain.ErrNotFound)
	}

	var prompt string
	err = p.db.QueryRowContext(ctx, query, promptID).Scan(&prompt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("prompt not found for id %d: %w", promptID, domain.ErrNotFound)
		}
		return "", fmt.Errorf("fetching prompt by id: %w", err)
	}

	return prompt, nil
}

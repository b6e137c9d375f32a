package handler

import (
	"context"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type Assistant interface {
	Handle(ctx context.Context, sessionID string, in domain.Input) domain.Output
	Clear(ctx context.Context, sessionID string) string
	Session(ctx context.Context, sessionID string) domain.Session
	Languages() []string
	RegenerateImage(ctx context.Context, promptID string) domain.Output
	CheckCredentials(ctx context.Context) []string
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type SessionRepository interface {
	Get(id string) (domain.Session, bool)
	Save(session domain.Session)
	Delete(id string)
}

type turnRunner interface {
	Run(ctx context.Context, session domain.Session, in domain.Input) (domain.Session, domain.Output)
}

type imageRegenerator interface {
	GenerateImageByPromptID(ctx context.Context, promptID string) (*domain.Image, error)
}

type credentialsReporter interface {
	Check(ctx context.Context) []string
}

// assistant is the entry point used by the user interfaces. It loads the
// session, runs the turn and stores the result. Two concurrent turns on the
// same session both run and the one finishing last is kept.
type assistant struct {
	sessions    SessionRepository
	runner      turnRunner
	images      imageRegenerator
	credentials credentialsReporter
	opts        domain.Options
}

func NewAssistant(
	sessions SessionRepository,
	runner turnRunner,
	images imageRegenerator,
	credentials credentialsReporter,
	opts domain.Options,
) *assistant {
	return &assistant{
		sessions:    sessions,
		runner:      runner,
		images:      images,
		credentials: credentials,
		opts:        opts,
	}
}

func (a *assistant) Session(ctx context.Context, sessionID string) domain.Session {
	if session, ok := a.sessions.Get(sessionID); ok {
		return session
	}
	return domain.NewSession(sessionID, a.opts.NativeLanguage)
}

func (a *assistant) Handle(ctx context.Context, sessionID string, in domain.Input) domain.Output {
	session, out := a.runner.Run(ctx, a.Session(ctx, sessionID), in)
	a.sessions.Save(session)

	slog.InfoContext(ctx, "Turn handled",
		"sessionID", sessionID,
		"kind", out.Kind,
		"turns", session.Conversation.Len(),
	)

	return out
}

// Clear empties the conversation memory and keeps the chosen language.
func (a *assistant) Clear(ctx context.Context, sessionID string) string {
	session, ok := a.sessions.Get(sessionID)
	if ok {
		a.sessions.Save(session.Cleared())
	}

	slog.InfoContext(ctx, "Chat memory cleared", "sessionID", sessionID)

	return "🧠 Chat memory cleared!"
}

func (a *assistant) SetLanguage(ctx context.Context, sessionID, language string) error {
	if !a.opts.IsSupportedLanguage(language) {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, language)
	}

	session := a.Session(ctx, sessionID)
	session.Language = language
	a.sessions.Save(session)

	return nil
}

func (a *assistant) Languages() []string {
	return a.opts.Languages
}

func (a *assistant) RegenerateImage(ctx context.Context, promptID string) domain.Output {
	image, err := a.images.GenerateImageByPromptID(ctx, promptID)
	if err != nil {
		return domain.FailureOutput(err)
	}
	return domain.ImageOutput(image)
}

func (a *assistant) CheckCredentials(ctx context.Context) []string {
	return a.credentials.Check(ctx)
}

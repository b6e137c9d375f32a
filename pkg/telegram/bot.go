package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"

	"github.com/dskvich/chatai-assistant/pkg/domain"
	"github.com/dskvich/chatai-assistant/pkg/telegram/handlers"
	"github.com/dskvich/chatai-assistant/pkg/telegram/matchers"
	"github.com/dskvich/chatai-assistant/pkg/telegram/middleware"
)

type Assistant interface {
	handlers.TurnHandler
	handlers.ChatClearer
	handlers.LanguageSetter
	handlers.ImageRegenerator
	handlers.CredentialsChecker
	Languages() []string
}

type SpeechToText interface {
	SpeechToText(ctx context.Context, audioPath string) (string, error)
}

type Authorizer interface {
	IsAuthorized(userID int64) bool
}

// NewBot registers the commands, messages and callbacks served by the assistant.
func NewBot(token string, assistant Assistant, speech SpeechToText, authorizer Authorizer, opts ...bot.Option) (*bot.Bot, error) {
	opts = append([]bot.Option{
		bot.WithMiddlewares(middleware.RequestID, middleware.Auth(authorizer)),
		bot.WithDefaultHandler(handlers.Start()),
	}, opts...)

	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	b.RegisterHandlerMatchFunc(matchers.IsCommand("start"), handlers.Start())
	b.RegisterHandlerMatchFunc(matchers.IsCommand("clear"), handlers.ClearChat(assistant))
	b.RegisterHandlerMatchFunc(matchers.IsCommand("lang"), handlers.ShowLanguages(assistant.Languages()))
	b.RegisterHandlerMatchFunc(matchers.IsCommand("check"), handlers.CheckCredentials(assistant), middleware.Typing)

	b.RegisterHandlerMatchFunc(matchers.IsContent, handlers.GenerateContent(assistant),
		middleware.Typing,
		middleware.VoiceToText(speech),
	)

	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.SetLanguageCallbackPrefix, bot.MatchTypePrefix,
		handlers.SetLanguage(assistant))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.GenImageCallbackPrefix, bot.MatchTypePrefix,
		handlers.RegenerateImage(assistant), middleware.Typing)

	return b, nil
}

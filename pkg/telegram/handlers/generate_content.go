package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type TurnHandler interface {
	Handle(ctx context.Context, sessionID string, in domain.Input) domain.Output
}

// GenerateContent answers a text message, or a voice message already
// transcribed by the VoiceToText middleware.
func GenerateContent(handler TurnHandler) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID
		topicID := update.Message.MessageThreadID
		prompt := lo.CoalesceOrEmpty(update.Message.Text, update.Message.Caption)

		slog.InfoContext(ctx, "Generating content", "chatID", chatID, "length", len(prompt))

		out := handler.Handle(ctx, SessionID(chatID, topicID), domain.Input{
			Text: prompt,
			Mode: domain.ModeAuto,
		})

		sendOutput(ctx, b, chatID, topicID, out)
	}
}

package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type ChatClearer interface {
	Clear(ctx context.Context, sessionID string) string
}

func ClearChat(clearer ChatClearer) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		slog.InfoContext(ctx, "Clearing chat")

		text := clearer.Clear(ctx, messageSessionID(update.Message))

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          update.Message.Chat.ID,
			MessageThreadID: update.Message.MessageThreadID,
			Text:            text,
		})
	}
}

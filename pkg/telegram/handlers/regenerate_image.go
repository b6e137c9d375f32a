package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type ImageRegenerator interface {
	RegenerateImage(ctx context.Context, promptID string) domain.Output
}

func RegenerateImage(regenerator ImageRegenerator) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		msg := update.CallbackQuery.Message.Message
		chatID, topicID := msg.Chat.ID, msg.MessageThreadID

		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			ShowAlert:       false,
		})

		promptID := strings.TrimPrefix(update.CallbackQuery.Data, domain.GenImageCallbackPrefix)

		slog.InfoContext(ctx, "Regenerating image", "promptID", promptID)

		sendOutput(ctx, b, chatID, topicID, regenerator.RegenerateImage(ctx, promptID))
	}
}

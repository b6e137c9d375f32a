package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type authorizer interface {
	IsAuthorized(userID int64) bool
}

func Auth(authorizer authorizer) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var (
				userID  int64
				chatID  int64
				topicID int
			)

			switch {
			case update.Message != nil && update.Message.From != nil:
				userID = update.Message.From.ID
				chatID, topicID = update.Message.Chat.ID, update.Message.MessageThreadID
			case update.CallbackQuery != nil:
				userID = update.CallbackQuery.From.ID
				if msg := update.CallbackQuery.Message.Message; msg != nil {
					chatID, topicID = msg.Chat.ID, msg.MessageThreadID
				}
			default:
				slog.WarnContext(ctx, "Received unknown update type", "updateID", update.ID)
				return
			}

			if authorizer.IsAuthorized(userID) {
				next(ctx, b, update)
				return
			}

			slog.WarnContext(ctx, "Unauthorized access attempt", "userID", userID)

			if chatID != 0 {
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID:          chatID,
					MessageThreadID: topicID,
					Text:            "❌ Non autorizzato",
				})
			}
		}
	}
}

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type LanguageSetter interface {
	SetLanguage(ctx context.Context, sessionID, language string) error
}

func SetLanguage(setter LanguageSetter) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		msg := update.CallbackQuery.Message.Message
		chatID, topicID := msg.Chat.ID, msg.MessageThreadID

		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			ShowAlert:       false,
		})

		language := strings.TrimPrefix(update.CallbackQuery.Data, domain.SetLanguageCallbackPrefix)

		if err := setter.SetLanguage(ctx, SessionID(chatID, topicID), language); err != nil {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:          chatID,
				MessageThreadID: topicID,
				Text:            fmt.Sprintf("❌ Impossibile impostare la lingua: %s", err),
			})
			return
		}

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          chatID,
			MessageThreadID: topicID,
			Text:            "✅ Lingua impostata: " + language,
		})
	}
}

package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

const languagesPerRow = 5

func ShowLanguages(languages []string) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		buttons := lo.Map(languages, func(lang string, _ int) models.InlineKeyboardButton {
			return models.InlineKeyboardButton{Text: lang, CallbackData: domain.SetLanguageCallbackPrefix + lang}
		})

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          update.Message.Chat.ID,
			MessageThreadID: update.Message.MessageThreadID,
			Text:            "🌍 Scegli la lingua delle risposte:",
			ReplyMarkup: &models.InlineKeyboardMarkup{
				InlineKeyboard: lo.Chunk(buttons, languagesPerRow),
			},
		})
	}
}

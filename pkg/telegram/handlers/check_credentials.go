package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type CredentialsChecker interface {
	CheckCredentials(ctx context.Context) []string
}

func CheckCredentials(checker CredentialsChecker) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		results := checker.CheckCredentials(ctx)

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          update.Message.Chat.ID,
			MessageThreadID: update.Message.MessageThreadID,
			Text:            strings.Join(results, "\n"),
		})
	}
}

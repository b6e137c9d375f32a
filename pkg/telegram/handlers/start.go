package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func Start() bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}

		greeting := `👋 Ciao! Sono il tuo assistente AI. Ecco cosa so fare:

🧹 /clear — Cancella la memoria della chat
🌍 /lang — Scegli la lingua delle risposte
🔑 /check — Verifica le credenziali dei servizi

🖊️ Scrivimi una domanda e ti risponderò, anche a voce.
🎨 Scrivi "disegna ..." o "draw ..." e creerò un'immagine.
🎙 Inviami un messaggio vocale e lo capirò.

Iniziamo? 🚀`

		b.SendMessage(ctx, &bot.SendMessageParams{
			MessageThreadID: update.Message.MessageThreadID,
			ChatID:          update.Message.Chat.ID,
			Text:            greeting,
		})
	}
}

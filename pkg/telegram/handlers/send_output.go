package handlers

import (
	"bytes"
	"context"
	"html"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/chatai-assistant/pkg/domain"
	"github.com/dskvich/chatai-assistant/pkg/logger"
	"github.com/dskvich/chatai-assistant/pkg/render"
)

const (
	maxTelegramMessageLength = 4096
	moreButtonText           = "🔁 Ancora"
)

// chunkDelay spaces consecutive parts of a long answer.
var chunkDelay = time.Second

func sendOutput(ctx context.Context, b *bot.Bot, chatID int64, topicID int, out domain.Output) {
	switch out.Kind {
	case domain.OutputImage:
		sendImage(ctx, b, chatID, topicID, out.Image)
	case domain.OutputText:
		sendText(ctx, b, chatID, topicID, out.Text)
		if out.Audio != nil && len(out.Audio.Data) > 0 {
			sendAudio(ctx, b, chatID, topicID, out.Audio)
		}
	default:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          chatID,
			MessageThreadID: topicID,
			Text:            out.Message(),
		})
	}
}

func sendImage(ctx context.Context, b *bot.Bot, chatID int64, topicID int, image *domain.Image) {
	params := &bot.SendPhotoParams{
		ChatID:          chatID,
		MessageThreadID: topicID,
		Photo: &models.InputFileUpload{
			Filename: "image.png",
			Data:     bytes.NewReader(image.Data),
		},
	}

	if image.PromptID != "" {
		params.ReplyMarkup = &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{{Text: moreButtonText, CallbackData: domain.GenImageCallbackPrefix + image.PromptID}},
			},
		}
	}

	if _, err := b.SendPhoto(ctx, params); err != nil {
		slog.ErrorContext(ctx, "Sending photo", logger.Err(err))
	}
}

func sendAudio(ctx context.Context, b *bot.Bot, chatID int64, topicID int, audio *domain.Audio) {
	_, err := b.SendAudio(ctx, &bot.SendAudioParams{
		ChatID:          chatID,
		MessageThreadID: topicID,
		Audio: &models.InputFileUpload{
			Filename: "risposta.mp3",
			Data:     bytes.NewReader(audio.Data),
		},
	})
	if err != nil {
		slog.WarnContext(ctx, "Sending audio", logger.Err(err))
	}
}

func sendText(ctx context.Context, b *bot.Bot, chatID int64, topicID int, text string) {
	chunks := splitMessage(render.ToTelegramHTML(text), maxTelegramMessageLength)

	for i, chunk := range chunks {
		if i > 0 {
			time.Sleep(chunkDelay)
		}

		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          chatID,
			MessageThreadID: topicID,
			Text:            chunk,
			ParseMode:       models.ParseModeHTML,
		})
		if err == nil {
			continue
		}

		// Telegram rejects the whole message on malformed markup.
		// Parts already delivered are not sent again.
		slog.WarnContext(ctx, "Sending HTML message, retrying as plain text", "part", i, logger.Err(err))
		for _, rest := range chunks[i:] {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:          chatID,
				MessageThreadID: topicID,
				Text:            plainText(rest),
			})
		}
		return
	}
}

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// plainText removes the markup of a rendered part.
func plainText(part string) string {
	return html.UnescapeString(htmlTag.ReplaceAllString(part, ""))
}

// splitMessage cuts text into parts of at most limit runes, preferring to
// cut before a code block or at a line break.
func splitMessage(text string, limit int) []string {
	var parts []string

	for utf8.RuneCountInString(text) > limit {
		head := string([]rune(text)[:limit])

		cut := strings.LastIndex(head, "<pre>")
		if cut <= 0 {
			cut = strings.LastIndex(head, "\n")
		}
		if cut <= 0 {
			cut = len(head)
		}

		parts = append(parts, text[:cut])
		text = strings.TrimLeft(text[cut:], "\n")
	}

	if strings.TrimSpace(text) != "" {
		parts = append(parts, text)
	}

	return parts
}

package middleware

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/chatai-assistant/pkg/domain"
	"github.com/dskvich/chatai-assistant/pkg/logger"
)

type speechToText interface {
	SpeechToText(ctx context.Context, audioPath string) (string, error)
}

// VoiceToText replaces a voice message with its transcription before the
// next handler runs.
func VoiceToText(transcriber speechToText) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		download := func(ctx context.Context, link, dir string) (string, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
			if err != nil {
				return "", err
			}

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
			}

			path := filepath.Join(dir, "voice.ogg")
			f, err := os.Create(path)
			if err != nil {
				return "", err
			}
			defer f.Close()

			if _, err := io.Copy(f, resp.Body); err != nil {
				return "", err
			}

			return path, nil
		}

		processVoiceMessage := func(ctx context.Context, b *bot.Bot, voice *models.Voice) (string, error) {
			voiceFile, err := b.GetFile(ctx, &bot.GetFileParams{FileID: voice.FileID})
			if err != nil {
				return "", fmt.Errorf("getting voice file metadata: %w", err)
			}

			dir, err := os.MkdirTemp("", "telegram-voice-*")
			if err != nil {
				return "", fmt.Errorf("creating temp dir: %w", err)
			}
			defer os.RemoveAll(dir)

			path, err := download(ctx, b.FileDownloadLink(voiceFile), dir)
			if err != nil {
				return "", fmt.Errorf("downloading voice file: %w", err)
			}

			return transcriber.SpeechToText(ctx, path)
		}

		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil || update.Message.Voice == nil {
				next(ctx, b, update)
				return
			}

			chatID, topicID := update.Message.Chat.ID, update.Message.MessageThreadID

			text, err := processVoiceMessage(ctx, b, update.Message.Voice)
			if err != nil {
				slog.ErrorContext(ctx, "Processing voice message", logger.Err(err))
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID:          chatID,
					MessageThreadID: topicID,
					Text:            domain.ErrorMessage(err),
				})
				return
			}

			update.Message.Text = text

			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:          chatID,
				MessageThreadID: topicID,
				Text:            "🎤 " + text,
			})

			next(ctx, b, update)
		}
	}
}

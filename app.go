package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dskvich/chatai-assistant/pkg/api/handler"
	"github.com/dskvich/chatai-assistant/pkg/config"
	"github.com/dskvich/chatai-assistant/pkg/converter"
	"github.com/dskvich/chatai-assistant/pkg/database"
	"github.com/dskvich/chatai-assistant/pkg/huggingface"
	"github.com/dskvich/chatai-assistant/pkg/openai"
	"github.com/dskvich/chatai-assistant/pkg/repository"
	"github.com/dskvich/chatai-assistant/pkg/services"
	"github.com/dskvich/chatai-assistant/pkg/speech"
	"github.com/dskvich/chatai-assistant/pkg/translate"
)

type assistant interface {
	handler.Assistant
	SetLanguage(ctx context.Context, sessionID, language string) error
}

type components struct {
	assistant assistant
	speech    interface {
		SpeechToText(ctx context.Context, audioPath string) (string, error)
	}
	sessions interface{ Purge() int }
	close    func() error
}

func setupComponents(cfg *config.Config) (*components, error) {
	opts := cfg.Options()

	chatClient, err := openai.NewClient(cfg.ChatAPIKey, cfg.ChatAPIBaseURL, cfg.STTModel, cfg.ChatTimeout)
	if err != nil {
		return nil, fmt.Errorf("creating chat client: %w", err)
	}

	imageClient := huggingface.NewClient(cfg.ImageAPIKey, cfg.ImageAPIURL, cfg.ImageTimeout)
	translator := translate.NewGoogleTranslator(translate.DefaultGoogleURL, cfg.TranslateTimeout)
	synthesizer := speech.NewGoogleSynthesizer(speech.DefaultGoogleTTSURL, cfg.SpeechTimeout)

	var transcriber services.Transcriber = chatClient
	if cfg.STTProvider == config.STTProviderGoogle {
		transcriber = speech.NewGoogleRecognizer(
			speech.DefaultGoogleRecognizerURL,
			cfg.GoogleSpeechAPIKey,
			cfg.SpeechTimeout,
			&converter.Audio{},
		)
	}
	slog.Info("Speech recognition configured", "provider", cfg.STTProvider)

	closeFn := func() error { return nil }

	var prompts services.PromptsRepository = repository.NewMemoryPromptsRepository()
	if cfg.PgURL != "" {
		db, err := database.NewPostgres(cfg.PgURL, cfg.PgHost)
		if err != nil {
			return nil, fmt.Errorf("creating db: %w", err)
		}
		prompts = repository.NewPromptsRepository(db)
		closeFn = db.Close
	} else {
		slog.Info("DATABASE_URL not set, image prompts are kept in memory")
	}

	sessions := repository.NewSessionRepository(cfg.SessionTTL)

	imageService := services.NewImageService(imageClient, prompts, opts)
	speechService := services.NewSpeechService(transcriber, synthesizer, cfg.STTLanguage, opts)

	orchestrator := services.NewOrchestrator(
		services.NewIntentDetector(opts.ImageKeywords),
		services.NewChatService(chatClient, translator, opts),
		imageService,
		speechService,
		opts,
	)

	return &components{
		assistant: services.NewAssistant(
			sessions,
			orchestrator,
			imageService,
			services.NewCredentialChecker(chatClient, imageClient),
			opts,
		),
		speech:   speechService,
		sessions: sessions,
		close:    closeFn,
	}, nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dskvich/chatai-assistant/pkg/domain"
	"github.com/dskvich/chatai-assistant/pkg/logger"
)

type orchestrator struct {
	intents *intentDetector
	chat    *chatService
	images  *imageService
	speech  *speechService
	opts    domain.Options
	now     func() time.Time
}

func NewOrchestrator(
	intents *intentDetector,
	chat *chatService,
	images *imageService,
	speech *speechService,
	opts domain.Options,
) *orchestrator {
	return &orchestrator{
		intents: intents,
		chat:    chat,
		images:  images,
		speech:  speech,
		opts:    opts,
		now:     time.Now,
	}
}

// Run executes one turn against session and returns the updated session.
// Failures are reported through the output, never as a panic.
func (o *orchestrator) Run(ctx context.Context, session domain.Session, in domain.Input) (domain.Session, domain.Output) {
	language, err := o.language(session, in)
	if err != nil {
		return session, domain.FailureOutput(err)
	}
	session.Language = language

	text := in.Text
	if in.AudioPath != "" {
		transcript, err := o.speech.SpeechToText(ctx, in.AudioPath)
		if err != nil {
			slog.ErrorContext(ctx, "Speech recognition failed", logger.Err(err))
			return session, domain.FailureOutput(err)
		}
		slog.InfoContext(ctx, "Audio transcribed", "length", len(transcript))
		text = transcript
	}

	if strings.TrimSpace(text) == "" {
		return session, domain.FailureOutput(domain.ErrEmptyInput)
	}

	session.UpdatedAt = o.now()

	intent := o.intents.Resolve(in.Mode, text)
	slog.InfoContext(ctx, "Intent resolved", "intent", intent, "mode", in.Mode, "language", language)

	if intent == domain.IntentGenerateImage {
		image, err := o.images.GenerateImage(ctx, text)
		if err != nil {
			slog.ErrorContext(ctx, "Image generation failed", logger.Err(err))
			return session, domain.FailureOutput(err)
		}
		return session, domain.ImageOutput(image)
	}

	conv, reply, err := o.chat.Reply(ctx, session.Conversation, text, language)
	session.Conversation = conv
	if err != nil {
		slog.ErrorContext(ctx, "Chat completion failed", logger.Err(err))
		return session, domain.FailureOutput(err)
	}

	audio, err := o.speech.TextToSpeech(ctx, reply, language)
	if err != nil {
		slog.WarnContext(ctx, "Speech synthesis failed, replying without audio", logger.Err(err))
		audio = nil
	}

	return session, domain.TextOutput(reply, audio)
}

func (o *orchestrator) language(session domain.Session, in domain.Input) (string, error) {
	language := in.Language
	if language == "" {
		language = session.Language
	}
	if language == "" {
		language = o.opts.NativeLanguage
	}

	if !o.opts.IsSupportedLanguage(language) {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, language)
	}

	return language, nil
}

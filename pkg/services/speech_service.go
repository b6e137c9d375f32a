package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type Transcriber interface {
	TranscribeAudio(ctx context.Context, name string, data []byte, language string) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) (*domain.Audio, error)
}

type speechService struct {
	transcriber         Transcriber
	synthesizer         Synthesizer
	recognitionLanguage string
	opts                domain.Options
}

// NewSpeechService bridges audio and text. An empty recognitionLanguage lets the
// transcriber pick its default.
func NewSpeechService(transcriber Transcriber, synthesizer Synthesizer, recognitionLanguage string, opts domain.Options) *speechService {
	return &speechService{
		transcriber:         transcriber,
		synthesizer:         synthesizer,
		recognitionLanguage: recognitionLanguage,
		opts:                opts,
	}
}

func (s *speechService) SpeechToText(ctx context.Context, audioPath string) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", domain.RecognitionError("speech", fmt.Errorf("reading audio file: %w", err))
	}

	slog.InfoContext(ctx, "Transcribing audio", "file", filepath.Base(audioPath), "size", len(data))

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	text, err := s.transcriber.TranscribeAudio(ctx, filepath.Base(audioPath), data, s.recognitionLanguage)
	if err != nil {
		return "", fmt.Errorf("transcribing audio: %w", err)
	}

	return text, nil
}

func (s *speechService) TextToSpeech(ctx context.Context, text, language string) (*domain.Audio, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	audio, err := s.synthesizer.Synthesize(ctx, text, domain.SpeechLanguage(language))
	if err != nil {
		return nil, fmt.Errorf("synthesizing speech: %w", err)
	}

	return audio, nil
}

func (s *speechService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.SpeechTimeout > 0 {
		return context.WithTimeout(ctx, s.opts.SpeechTimeout)
	}
	return context.WithCancel(ctx)
}

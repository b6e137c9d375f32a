package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dskvich/chatai-assistant/pkg/domain"
	"github.com/dskvich/chatai-assistant/pkg/logger"
)

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

type PromptsRepository interface {
	Save(ctx context.Context, prompt string) (string, error)
	GetByID(ctx context.Context, id string) (string, error)
}

type imageService struct {
	generator   ImageGenerator
	promptsRepo PromptsRepository
	opts        domain.Options
}

func NewImageService(generator ImageGenerator, promptsRepo PromptsRepository, opts domain.Options) *imageService {
	return &imageService{
		generator:   generator,
		promptsRepo: promptsRepo,
		opts:        opts,
	}
}

func (s *imageService) GenerateImage(ctx context.Context, prompt string) (*domain.Image, error) {
	slog.InfoContext(ctx, "Starting image generation", "prompt", prompt)

	// The prompt is kept only to offer regeneration, losing it must not fail the turn.
	promptID, err := s.promptsRepo.Save(ctx, prompt)
	if err != nil {
		slog.WarnContext(ctx, "Prompt not saved", logger.Err(err))
	} else {
		slog.InfoContext(ctx, "Prompt saved", "promptID", promptID)
	}

	return s.generate(ctx, promptID, prompt)
}

func (s *imageService) GenerateImageByPromptID(ctx context.Context, promptID string) (*domain.Image, error) {
	slog.InfoContext(ctx, "Starting image generation by promptID", "promptID", promptID)

	prompt, err := s.promptsRepo.GetByID(ctx, promptID)
	if err != nil {
		return nil, fmt.Errorf("getting prompt: %w", err)
	}

	slog.InfoContext(ctx, "Prompt fetched", "prompt", prompt)

	return s.generate(ctx, promptID, prompt)
}

func (s *imageService) generate(ctx context.Context, promptID, prompt string) (*domain.Image, error) {
	if s.opts.ImageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.ImageTimeout)
		defer cancel()
	}

	data, err := s.generator.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating image: %w", err)
	}

	slog.InfoContext(ctx, "Image generated", "size", len(data))

	return &domain.Image{
		PromptID: promptID,
		Data:     data,
		MIMEType: http.DetectContentType(data),
	}, nil
}

package services

import (
	"strings"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type intentDetector struct {
	imageKeywords []string
}

func NewIntentDetector(imageKeywords []string) *intentDetector {
	keywords := make([]string, 0, len(imageKeywords))
	for _, k := range imageKeywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}

	return &intentDetector{
		imageKeywords: keywords,
	}
}

func (i *intentDetector) DetectIntent(prompt string) domain.Intent {
	lowerText := strings.ToLower(prompt)
	for _, keyword := range i.imageKeywords {
		if strings.Contains(lowerText, keyword) {
			return domain.IntentGenerateImage
		}
	}

	return domain.IntentGenerateText
}

// Resolve honours an explicit mode and falls back to keyword detection.
func (i *intentDetector) Resolve(mode domain.Mode, prompt string) domain.Intent {
	switch mode {
	case domain.ModeImage:
		return domain.IntentGenerateImage
	case domain.ModeChat:
		return domain.IntentGenerateText
	default:
		return i.DetectIntent(prompt)
	}
}

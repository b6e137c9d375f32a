package domain

import (
	"time"

	"github.com/samber/lo"
)

const (
	DefaultChatModel      = "llama-3.3-70b-versatile"
	DefaultSystemPrompt   = "Rispondi come un assistente amichevole e utile."
	DefaultNativeLanguage = "it"
	DefaultTemperature    = 0.7
	DefaultMaxTokens      = 700
)

var (
	DefaultLanguages     = []string{"it", "en", "fr", "es", "de", "pt", "ar", "hi", "ja", "zh"}
	DefaultImageKeywords = []string{"immagine", "disegna", "crea", "picture", "foto", "image", "draw", "create", "photo"}
)

// Options parameterises the orchestrator.
type Options struct {
	Model              string
	SystemPrompt       string
	Temperature        float32
	MaxTokens          int
	NativeLanguage     string
	Languages          []string
	ImageKeywords      []string
	AppendFailedTurns  bool
	ChatTimeout        time.Duration
	ImageTimeout       time.Duration
	SpeechTimeout      time.Duration
	TranslationTimeout time.Duration
}

func DefaultOptions() Options {
	return Options{
		Model:              DefaultChatModel,
		SystemPrompt:       DefaultSystemPrompt,
		Temperature:        DefaultTemperature,
		MaxTokens:          DefaultMaxTokens,
		NativeLanguage:     DefaultNativeLanguage,
		Languages:          DefaultLanguages,
		ImageKeywords:      DefaultImageKeywords,
		AppendFailedTurns:  true,
		ChatTimeout:        60 * time.Second,
		ImageTimeout:       120 * time.Second,
		SpeechTimeout:      30 * time.Second,
		TranslationTimeout: 15 * time.Second,
	}
}

func (o Options) IsSupportedLanguage(lang string) bool {
	return lo.Contains(o.Languages, lang)
}

// SpeechLanguage maps a UI language code to the code expected by the speech synthesizer.
func SpeechLanguage(lang string) string {
	if lang == "pt" {
		return "pt-br"
	}
	return lang
}

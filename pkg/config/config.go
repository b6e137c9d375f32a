package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type Config struct {
	ChatAPIKey        string        `env:"GROQ_API_KEY"`
	ChatAPIBaseURL    string        `env:"CHAT_API_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	ChatModel         string        `env:"CHAT_MODEL" envDefault:"llama-3.3-70b-versatile"`
	ChatTemperature   float32       `env:"CHAT_TEMPERATURE" envDefault:"0.7"`
	ChatMaxTokens     int           `env:"CHAT_MAX_TOKENS" envDefault:"700"`
	ChatTimeout       time.Duration `env:"CHAT_TIMEOUT" envDefault:"60s"`
	SystemPrompt      string        `env:"SYSTEM_PROMPT" envDefault:"Rispondi come un assistente amichevole e utile."`
	NativeLanguage    string        `env:"NATIVE_LANGUAGE" envDefault:"it"`
	Languages         []string      `env:"SUPPORTED_LANGUAGES" envSeparator:"," envDefault:"it,en,fr,es,de,pt,ar,hi,ja,zh"`
	ImageKeywords     []string      `env:"IMAGE_KEYWORDS" envSeparator:"," envDefault:"immagine,disegna,crea,picture,foto,image,draw,create,photo"`
	AppendFailedTurns bool          `env:"APPEND_FAILED_TURNS" envDefault:"true"`

	ImageAPIKey  string        `env:"HF_TOKEN"`
	ImageAPIURL  string        `env:"IMAGE_API_URL" envDefault:"https://router.huggingface.co/hf-inference/models/black-forest-labs/FLUX.1-schnell"`
	ImageTimeout time.Duration `env:"IMAGE_TIMEOUT" envDefault:"120s"`

	STTProvider        string        `env:"STT_PROVIDER" envDefault:"whisper"`
	STTModel           string        `env:"STT_MODEL" envDefault:"whisper-large-v3"`
	STTLanguage        string        `env:"STT_LANGUAGE"`
	GoogleSpeechAPIKey string        `env:"GOOGLE_SPEECH_API_KEY"`
	SpeechTimeout      time.Duration `env:"SPEECH_TIMEOUT" envDefault:"30s"`
	TranslateTimeout   time.Duration `env:"TRANSLATE_TIMEOUT" envDefault:"15s"`

	HTTPHost   string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	HTTPPort   int           `env:"HTTP_PORT" envDefault:"10000"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"0"`

	LogLevel   string `env:"LOG_LEVEL" envDefault:"debug"`
	LogNoColor bool   `env:"LOG_NO_COLOR"`

	TelegramBotToken          string  `env:"TELEGRAM_BOT_TOKEN"`
	TelegramAuthorizedUserIDs []int64 `env:"TELEGRAM_AUTHORIZED_USER_IDS" envSeparator:" "`

	PgURL  string `env:"DATABASE_URL"`
	PgHost string `env:"DB_HOST"`
}

const (
	minMaxTokens = 500
	maxMaxTokens = 700
)

const (
	STTProviderWhisper = "whisper"
	STTProviderGoogle  = "google"
)

// Load reads an optional .env file from the working directory and parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	return Parse()
}

func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ChatTemperature < 0 || c.ChatTemperature > 2 {
		return fmt.Errorf("CHAT_TEMPERATURE must be within [0, 2], got %v", c.ChatTemperature)
	}
	if c.ChatMaxTokens < minMaxTokens || c.ChatMaxTokens > maxMaxTokens {
		return fmt.Errorf("CHAT_MAX_TOKENS must be within [%d, %d], got %d", minMaxTokens, maxMaxTokens, c.ChatMaxTokens)
	}
	if len(c.Languages) == 0 {
		return errors.New("SUPPORTED_LANGUAGES is empty")
	}
	if !lo.Contains(c.Languages, c.NativeLanguage) {
		return fmt.Errorf("NATIVE_LANGUAGE %q is not in SUPPORTED_LANGUAGES", c.NativeLanguage)
	}
	if len(c.ImageKeywords) == 0 {
		return errors.New("IMAGE_KEYWORDS is empty")
	}
	if !lo.Contains([]string{STTProviderWhisper, STTProviderGoogle}, c.STTProvider) {
		return fmt.Errorf("unsupported STT_PROVIDER %q", c.STTProvider)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", c.HTTPPort)
	}
	return nil
}

func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(c.HTTPPort))
}

// Options returns the orchestrator parameters.
func (c *Config) Options() domain.Options {
	return domain.Options{
		Model:              c.ChatModel,
		SystemPrompt:       c.SystemPrompt,
		Temperature:        c.ChatTemperature,
		MaxTokens:          c.ChatMaxTokens,
		NativeLanguage:     c.NativeLanguage,
		Languages:          c.Languages,
		ImageKeywords:      c.ImageKeywords,
		AppendFailedTurns:  c.AppendFailedTurns,
		ChatTimeout:        c.ChatTimeout,
		ImageTimeout:       c.ImageTimeout,
		SpeechTimeout:      c.SpeechTimeout,
		TranslationTimeout: c.TranslateTimeout,
	}
}

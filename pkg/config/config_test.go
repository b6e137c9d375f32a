package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("HF_TOKEN", "hf-token")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "groq-key", cfg.ChatAPIKey)
	assert.Equal(t, "hf-token", cfg.ImageAPIKey)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.ChatModel)
	assert.InDelta(t, 0.7, cfg.ChatTemperature, 1e-6)
	assert.Equal(t, 700, cfg.ChatMaxTokens)
	assert.Equal(t, 60*time.Second, cfg.ChatTimeout)
	assert.Equal(t, 120*time.Second, cfg.ImageTimeout)
	assert.Equal(t, []string{"it", "en", "fr", "es", "de", "pt", "ar", "hi", "ja", "zh"}, cfg.Languages)
	assert.True(t, cfg.AppendFailedTurns)
	assert.Equal(t, "0.0.0.0:10000", cfg.ListenAddr())
	assert.Zero(t, cfg.SessionTTL)

	opts := cfg.Options()
	assert.Equal(t, "it", opts.NativeLanguage)
	assert.Equal(t, cfg.ImageKeywords, opts.ImageKeywords)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"temperature out of range", "CHAT_TEMPERATURE", "3"},
		{"non positive max tokens", "CHAT_MAX_TOKENS", "0"},
		{"max tokens below range", "CHAT_MAX_TOKENS", "499"},
		{"max tokens above range", "CHAT_MAX_TOKENS", "5000"},
		{"native language not supported", "NATIVE_LANGUAGE", "ru"},
		{"unknown stt provider", "STT_PROVIDER", "vosk"},
		{"port out of range", "HTTP_PORT", "70000"},
		{"malformed duration", "CHAT_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestParseMaxTokensBounds(t *testing.T) {
	for _, val := range []string{"500", "700"} {
		t.Setenv("CHAT_MAX_TOKENS", val)

		cfg, err := Parse()
		require.NoError(t, err)
		assert.Equal(t, val, fmt.Sprint(cfg.Options().MaxTokens))
	}
}

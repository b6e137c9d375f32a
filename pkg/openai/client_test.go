package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("secret", srv.URL+"/", "whisper-large-v3", 5*time.Second)
	require.NoError(t, err)
	return c
}

func TestCreateChatCompletion(t *testing.T) {
	var got map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"  Ciao!  \n"}}]}`))
	})

	text, err := c.CreateChatCompletion(context.Background(), domain.ChatRequest{
		Model: "llama-3.3-70b-versatile",
		Messages: []domain.Turn{
			{Role: domain.RoleSystem, Content: "be nice"},
			{Role: domain.RoleUser, Content: "hello"},
		},
		Temperature: 0.7,
		MaxTokens:   700,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ciao!", text)

	assert.Equal(t, "llama-3.3-70b-versatile", got["model"])
	assert.InDelta(t, 0.7, got["temperature"], 1e-6)
	assert.EqualValues(t, 700, got["max_tokens"])

	messages := got["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "hello", messages[1].(map[string]any)["content"])
}

func TestCreateChatCompletionFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind domain.ErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"invalid key"}`, domain.KindUnauthorized},
		{"server error", http.StatusInternalServerError, strings.Repeat("x", 400), domain.KindRemoteService},
		{"malformed json", http.StatusOK, `{"choices":`, domain.KindMalformedResponse},
		{"no choices", http.StatusOK, `{"choices":[]}`, domain.KindMalformedResponse},
		{"empty content", http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"  "}}]}`, domain.KindMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			text, err := c.CreateChatCompletion(context.Background(), domain.ChatRequest{Model: "m"})
			require.Error(t, err)
			assert.Empty(t, text)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))

			var e *domain.Error
			require.ErrorAs(t, err, &e)
			if tt.status != http.StatusOK {
				assert.Equal(t, tt.status, e.StatusCode)
				assert.LessOrEqual(t, len([]rune(e.Body)), 150)
			}
		})
	}
}

func TestCreateChatCompletionTransportError(t *testing.T) {
	c, err := NewClient("secret", "http://127.0.0.1:1", "whisper-large-v3", time.Second)
	require.NoError(t, err)

	_, err = c.CreateChatCompletion(context.Background(), domain.ChatRequest{Model: "m"})
	assert.Equal(t, domain.KindTransport, domain.KindOf(err))
}

func TestTranscribeAudio(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-large-v3", r.FormValue("model"))
		assert.Equal(t, "it", r.FormValue("language"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":" buongiorno "}`))
	})

	text, err := c.TranscribeAudio(context.Background(), "clip.wav", []byte("RIFF"), "it")
	require.NoError(t, err)
	assert.Equal(t, "buongiorno", text)
}

func TestTranscribeAudioEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":""}`))
	})

	_, err := c.TranscribeAudio(context.Background(), "clip.wav", []byte("RIFF"), "")
	assert.Equal(t, domain.KindRecognition, domain.KindOf(err))
}

func TestCheckToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("nope"))
	})

	status, body, err := c.CheckToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "nope", string(body))
}

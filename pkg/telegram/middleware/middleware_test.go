package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/chatai-assistant/pkg/logger"
)

type recorder struct {
	mu      sync.Mutex
	methods []string
	texts   []string
}

func newTestBot(t *testing.T) (*bot.Bot, *recorder) {
	t.Helper()

	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.methods = append(rec.methods, r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:])
		rec.texts = append(rec.texts, r.FormValue("text"))
		rec.mu.Unlock()

		w.Write([]byte(`{"ok":true,"result":true}`))
	}))
	t.Cleanup(srv.Close)

	b, err := bot.New("test-token", bot.WithSkipGetMe(), bot.WithServerURL(srv.URL))
	require.NoError(t, err)

	return b, rec
}

type allowList []int64

func (a allowList) IsAuthorized(userID int64) bool {
	for _, id := range a {
		if id == userID {
			return true
		}
	}
	return false
}

func update(userID int64) *models.Update {
	return &models.Update{
		ID: 5,
		Message: &models.Message{
			Chat: models.Chat{ID: 100},
			From: &models.User{ID: userID},
			Text: "Ciao",
		},
	}
}

func TestAuth(t *testing.T) {
	b, rec := newTestBot(t)

	var called bool
	next := func(context.Context, *bot.Bot, *models.Update) { called = true }

	Auth(allowList{42})(next)(context.Background(), b, update(42))
	assert.True(t, called)
	assert.Empty(t, rec.methods)

	called = false
	Auth(allowList{42})(next)(context.Background(), b, update(7))
	assert.False(t, called)
	assert.Equal(t, []string{"sendMessage"}, rec.methods)
	assert.Equal(t, []string{"❌ Non autorizzato"}, rec.texts)
}

func TestRequestID(t *testing.T) {
	var requestID string
	next := func(ctx context.Context, _ *bot.Bot, _ *models.Update) {
		requestID, _ = logger.RequestIDFromContext(ctx)
	}

	RequestID(next)(context.Background(), nil, update(1))
	assert.Equal(t, "tg-5", requestID)
}

func TestTyping(t *testing.T) {
	b, rec := newTestBot(t)

	var called bool
	Typing(func(context.Context, *bot.Bot, *models.Update) { called = true })(context.Background(), b, update(1))

	assert.True(t, called)
	assert.Equal(t, []string{"sendChatAction"}, rec.methods)
}

type fakeTranscriber struct{}

func (fakeTranscriber) SpeechToText(context.Context, string) (string, error) {
	return "", nil
}

func TestVoiceToTextPassesTextThrough(t *testing.T) {
	var got string
	next := func(_ context.Context, _ *bot.Bot, u *models.Update) { got = u.Message.Text }

	VoiceToText(fakeTranscriber{})(next)(context.Background(), nil, update(1))
	assert.Equal(t, "Ciao", got)
}

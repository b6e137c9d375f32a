package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

func TestChatServiceReply(t *testing.T) {
	completer := &mockCompleter{}
	completer.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req domain.ChatRequest) bool {
		return req.Model == domain.DefaultChatModel &&
			req.Temperature == float32(domain.DefaultTemperature) &&
			req.MaxTokens == domain.DefaultMaxTokens &&
			len(req.Messages) == 2 &&
			req.Messages[0].Role == domain.RoleSystem &&
			req.Messages[1] == domain.Turn{Role: domain.RoleUser, Content: "Ciao"}
	})).Return("Ciao! Come posso aiutarti?", nil)

	translator := &mockTranslator{}
	svc := NewChatService(completer, translator, domain.DefaultOptions())

	conv, reply, err := svc.Reply(context.Background(), domain.Conversation{}, "Ciao", "it")
	require.NoError(t, err)

	assert.Equal(t, "Ciao! Come posso aiutarti?", reply)
	assert.Equal(t, []domain.Turn{
		{Role: domain.RoleUser, Content: "Ciao"},
		{Role: domain.RoleAssistant, Content: "Ciao! Come posso aiutarti?"},
	}, conv.Turns())
	translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
}

func TestChatServiceReplyTranslates(t *testing.T) {
	completer := &mockCompleter{}
	completer.On("CreateChatCompletion", mock.Anything, mock.Anything).Return("Buongiorno", nil)

	translator := &mockTranslator{}
	translator.On("Translate", mock.Anything, "Buongiorno", "en").Return("Good morning", nil)

	svc := NewChatService(completer, translator, domain.DefaultOptions())

	conv, reply, err := svc.Reply(context.Background(), domain.Conversation{}, "Hello", "en")
	require.NoError(t, err)

	assert.Equal(t, "Good morning", reply)
	last, ok := conv.Last()
	require.True(t, ok)
	assert.Equal(t, domain.Turn{Role: domain.RoleAssistant, Content: "Good morning"}, last)
	translator.AssertExpectations(t)
}

func TestChatServiceReplyFailure(t *testing.T) {
	unauthorized := domain.StatusError("chat", 401, []byte(`{"error":"invalid api key"}`))

	tests := []struct {
		name          string
		appendFailed  bool
		completionErr error
		translateErr  error
		wantTurns     int
		wantKind      domain.ErrorKind
	}{
		{
			name:          "completion failure keeps user turn",
			appendFailed:  true,
			completionErr: unauthorized,
			wantTurns:     1,
			wantKind:      domain.KindUnauthorized,
		},
		{
			name:          "completion failure rolls back",
			appendFailed:  false,
			completionErr: unauthorized,
			wantTurns:     0,
			wantKind:      domain.KindUnauthorized,
		},
		{
			name:         "translation failure",
			appendFailed: true,
			translateErr: domain.TransportError("translate", errors.New("connection refused")),
			wantTurns:    1,
			wantKind:     domain.KindTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &mockCompleter{}
			completer.On("CreateChatCompletion", mock.Anything, mock.Anything).Return("Risposta", tt.completionErr)

			translator := &mockTranslator{}
			translator.On("Translate", mock.Anything, mock.Anything, mock.Anything).Return("", tt.translateErr)

			opts := domain.DefaultOptions()
			opts.AppendFailedTurns = tt.appendFailed

			conv, reply, err := NewChatService(completer, translator, opts).
				Reply(context.Background(), domain.Conversation{}, "Question", "fr")

			require.Error(t, err)
			assert.Empty(t, reply)
			assert.Equal(t, tt.wantTurns, conv.Len())
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
		})
	}
}

func TestChatServiceReplyEmptyMessage(t *testing.T) {
	completer := &mockCompleter{}
	start := domain.NewConversation(domain.Turn{Role: domain.RoleUser, Content: "prima"})

	conv, _, err := NewChatService(completer, &mockTranslator{}, domain.DefaultOptions()).
		Reply(context.Background(), start, "   ", "it")

	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Equal(t, 1, conv.Len())
	completer.AssertNotCalled(t, "CreateChatCompletion", mock.Anything, mock.Anything)
}

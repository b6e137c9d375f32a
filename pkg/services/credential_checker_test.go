package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckImageToken(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   []byte
		err    error
		want   string
	}{
		{
			name:   "valid",
			status: 200,
			want:   "✅ HF_TOKEN valid!",
		},
		{
			name:   "unauthorized",
			status: 401,
			want:   "❌ HF_TOKEN invalid or missing Inference API permission!",
		},
		{
			name:   "server error",
			status: 500,
			body:   []byte(strings.Repeat("x", 200)),
			want:   "⚠️ HF_TOKEN error: 500 - " + strings.Repeat("x", 150),
		},
		{
			name: "transport",
			err:  errors.New("dial tcp: connection refused"),
			want: "⚠️ HF_TOKEN check failed: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image := &mockTokenChecker{}
			image.On("CheckToken", mock.Anything).Return(tt.status, tt.body, tt.err)

			got := NewCredentialChecker(&mockTokenChecker{}, image).CheckImageToken(context.Background())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckChatToken(t *testing.T) {
	chat := &mockTokenChecker{}
	chat.On("CheckToken", mock.Anything).Return(401, []byte("nope"), nil)

	got := NewCredentialChecker(chat, &mockTokenChecker{}).CheckChatToken(context.Background())
	assert.Equal(t, "❌ GROQ_API_KEY invalid or missing permissions!", got)
}

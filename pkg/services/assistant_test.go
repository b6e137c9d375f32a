package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

func newTestAssistant(f *fixture, sessions *memorySessions) *assistant {
	chat, image := &mockTokenChecker{}, &mockTokenChecker{}
	chat.On("CheckToken", mock.Anything).Return(200, nil, nil)
	image.On("CheckToken", mock.Anything).Return(401, nil, nil)

	return NewAssistant(sessions, f.orchestrator(), f.images(), NewCredentialChecker(chat, image), f.opts)
}

func TestAssistantMemoryGrowsAndClears(t *testing.T) {
	f := newFixture()
	f.completer.On("CreateChatCompletion", mock.Anything, mock.Anything).Return("Risposta", nil)
	f.synthesizer.On("Synthesize", mock.Anything, mock.Anything, mock.Anything).Return(&domain.Audio{}, nil)

	sessions := newMemorySessions()
	a := newTestAssistant(f, sessions)
	ctx := context.Background()

	require.NoError(t, a.SetLanguage(ctx, "user-1", "it"))

	out := a.Handle(ctx, "user-1", domain.Input{Text: "Uno"})
	require.Equal(t, domain.OutputText, out.Kind)
	out = a.Handle(ctx, "user-1", domain.Input{Text: "Due"})
	require.Equal(t, domain.OutputText, out.Kind)

	assert.Equal(t, 4, a.Session(ctx, "user-1").Conversation.Len())
	assert.Equal(t, 0, a.Session(ctx, "user-2").Conversation.Len())

	assert.Equal(t, "🧠 Chat memory cleared!", a.Clear(ctx, "user-1"))

	session := a.Session(ctx, "user-1")
	assert.Equal(t, 0, session.Conversation.Len())
	assert.Equal(t, "it", session.Language)
}

func TestAssistantSetLanguage(t *testing.T) {
	a := newTestAssistant(newFixture(), newMemorySessions())
	ctx := context.Background()

	require.NoError(t, a.SetLanguage(ctx, "u", "ja"))
	assert.Equal(t, "ja", a.Session(ctx, "u").Language)

	err := a.SetLanguage(ctx, "u", "xx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
	assert.Equal(t, "ja", a.Session(ctx, "u").Language)
}

func TestAssistantNewSessionUsesNativeLanguage(t *testing.T) {
	a := newTestAssistant(newFixture(), newMemorySessions())

	assert.Equal(t, "it", a.Session(context.Background(), "fresh").Language)
}

func TestAssistantRegenerateImage(t *testing.T) {
	f := newFixture()
	f.prompts.On("GetByID", mock.Anything, "p-7").Return("a lighthouse", nil)
	f.prompts.On("GetByID", mock.Anything, "missing").Return("", domain.ErrNotFound)
	f.generator.On("GenerateImage", mock.Anything, "a lighthouse").Return(pngData, nil)

	a := newTestAssistant(f, newMemorySessions())

	out := a.RegenerateImage(context.Background(), "p-7")
	require.Equal(t, domain.OutputImage, out.Kind)
	assert.Equal(t, "p-7", out.Image.PromptID)

	out = a.RegenerateImage(context.Background(), "missing")
	require.True(t, out.Failed())
	assert.ErrorIs(t, out.Err, domain.ErrNotFound)
}

func TestAssistantCheckCredentials(t *testing.T) {
	a := newTestAssistant(newFixture(), newMemorySessions())

	assert.Equal(t, []string{
		"❌ HF_TOKEN invalid or missing Inference API permission!",
		"✅ GROQ_API_KEY valid!",
	}, a.CheckCredentials(context.Background()))
}

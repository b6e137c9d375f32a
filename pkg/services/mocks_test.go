package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) CreateChatCompletion(ctx context.Context, req domain.ChatRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type mockTranslator struct {
	mock.Mock
}

func (m *mockTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	args := m.Called(ctx, text, target)
	return args.String(0), args.Error(1)
}

type mockImageGenerator struct {
	mock.Mock
}

func (m *mockImageGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	args := m.Called(ctx, prompt)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

type mockPrompts struct {
	mock.Mock
}

func (m *mockPrompts) Save(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *mockPrompts) GetByID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockTranscriber struct {
	mock.Mock
}

func (m *mockTranscriber) TranscribeAudio(ctx context.Context, name string, data []byte, language string) (string, error) {
	args := m.Called(ctx, name, data, language)
	return args.String(0), args.Error(1)
}

type mockSynthesizer struct {
	mock.Mock
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, text, language string) (*domain.Audio, error) {
	args := m.Called(ctx, text, language)
	audio, _ := args.Get(0).(*domain.Audio)
	return audio, args.Error(1)
}

type mockTokenChecker struct {
	mock.Mock
}

func (m *mockTokenChecker) CheckToken(ctx context.Context) (int, []byte, error) {
	args := m.Called(ctx)
	body, _ := args.Get(1).([]byte)
	return args.Int(0), body, args.Error(2)
}

type memorySessions struct {
	sessions map[string]domain.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: map[string]domain.Session{}}
}

func (m *memorySessions) Get(id string) (domain.Session, bool) {
	s, ok := m.sessions[id]
	return s, ok
}

func (m *memorySessions) Save(session domain.Session) { m.sessions[session.ID] = session }

func (m *memorySessions) Delete(id string) { delete(m.sessions, id) }

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationAppend(t *testing.T) {
	c := NewConversation(Turn{Role: RoleUser, Content: "ciao"})

	next, ok := c.Append(Turn{Role: RoleAssistant, Content: "ciao! come posso aiutarti?"})
	assert.True(t, ok)
	assert.Equal(t, 2, next.Len())
	assert.Equal(t, 1, c.Len(), "original conversation must not change")

	last, ok := next.Last()
	assert.True(t, ok)
	assert.Equal(t, RoleAssistant, last.Role)

	same, ok := next.Append(Turn{Role: RoleUser, Content: " \n\t"})
	assert.False(t, ok)
	assert.Equal(t, next.Turns(), same.Turns())
}

func TestConversationTurnsIsCopy(t *testing.T) {
	c := NewConversation(Turn{Role: RoleUser, Content: "uno"}, Turn{Role: RoleUser, Content: ""})
	assert.Equal(t, 1, c.Len())

	turns := c.Turns()
	turns[0].Content = "changed"
	assert.Equal(t, "uno", c.Turns()[0].Content)

	_, ok := Conversation{}.Last()
	assert.False(t, ok)
}

func TestSessionCleared(t *testing.T) {
	s := NewSession("web:1", "en")
	s.Conversation = NewConversation(Turn{Role: RoleUser, Content: "hello"})

	cleared := s.Cleared()
	assert.Zero(t, cleared.Conversation.Len())
	assert.Equal(t, "en", cleared.Language)
	assert.Equal(t, 1, s.Conversation.Len())
}

func TestSpeechLanguage(t *testing.T) {
	assert.Equal(t, "pt-br", SpeechLanguage("pt"))
	assert.Equal(t, "it", SpeechLanguage("it"))
	assert.True(t, DefaultOptions().IsSupportedLanguage("ja"))
	assert.False(t, DefaultOptions().IsSupportedLanguage("xx"))
}

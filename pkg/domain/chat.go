package domain

import "strings"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message of a conversation. Turns are values and never
// modified after creation.
type Turn struct {
	Role    Role
	Content string
}

// Conversation is the ordered history sent to the model as context.
// Image requests are never part of it.
type Conversation struct {
	turns []Turn
}

func NewConversation(turns ...Turn) Conversation {
	var c Conversation
	for _, t := range turns {
		c, _ = c.Append(t)
	}
	return c
}

// Append returns a copy of the conversation with t added at the end.
// Turns with blank content are rejected and the conversation is returned unchanged.
func (c Conversation) Append(t Turn) (Conversation, bool) {
	if strings.TrimSpace(t.Content) == "" {
		return c, false
	}

	turns := make([]Turn, len(c.turns), len(c.turns)+1)
	copy(turns, c.turns)

	return Conversation{turns: append(turns, t)}, true
}

// Turns returns a copy of the history.
func (c Conversation) Turns() []Turn {
	turns := make([]Turn, len(c.turns))
	copy(turns, c.turns)
	return turns
}

func (c Conversation) Len() int { return len(c.turns) }

// Last returns the most recent turn.
func (c Conversation) Last() (Turn, bool) {
	if len(c.turns) == 0 {
		return Turn{}, false
	}
	return c.turns[len(c.turns)-1], true
}

type ChatRequest struct {
	Model       string
	Messages    []Turn
	Temperature float32
	MaxTokens   int
}

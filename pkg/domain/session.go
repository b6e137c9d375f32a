package domain

import "time"

type Session struct {
	ID           string
	Language     string
	Conversation Conversation
	UpdatedAt    time.Time
}

func NewSession(id, language string) Session {
	return Session{ID: id, Language: language}
}

// Cleared returns the session with an empty conversation.
func (s Session) Cleared() Session {
	s.Conversation = Conversation{}
	return s
}

type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeChat  Mode = "chat"
	ModeImage Mode = "image"
)

type Input struct {
	Text      string
	Language  string
	AudioPath string
	Mode      Mode
}

type Intent int

const (
	IntentGenerateText Intent = iota
	IntentGenerateImage
)

func (i Intent) String() string {
	if i == IntentGenerateImage {
		return "image"
	}
	return "text"
}

package domain

import (
	"errors"
	"fmt"
)

type OutputKind int

const (
	OutputText OutputKind = iota + 1
	OutputImage
	OutputFailure
)

func (k OutputKind) String() string {
	switch k {
	case OutputText:
		return "text"
	case OutputImage:
		return "image"
	case OutputFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Output is the result of one turn. Exactly one of Text (with optional Audio),
// Image or Err is populated, as indicated by Kind.
type Output struct {
	Kind  OutputKind
	Text  string
	Audio *Audio
	Image *Image
	Err   error
}

type Image struct {
	PromptID string
	Data     []byte
	MIMEType string
}

type Audio struct {
	Data     []byte
	MIMEType string
}

func TextOutput(text string, audio *Audio) Output {
	return Output{Kind: OutputText, Text: text, Audio: audio}
}

func ImageOutput(image *Image) Output {
	return Output{Kind: OutputImage, Image: image}
}

func FailureOutput(err error) Output {
	return Output{Kind: OutputFailure, Err: err}
}

func (o Output) Failed() bool { return o.Kind == OutputFailure }

// Message renders the output as a human readable string.
func (o Output) Message() string {
	switch o.Kind {
	case OutputText:
		return o.Text
	case OutputImage:
		return "🖼️ Image generated"
	case OutputFailure:
		return ErrorMessage(o.Err)
	default:
		return ""
	}
}

// ErrorMessage formats err for display.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrNoImage) {
		return "⚠️ No image returned"
	}
	if errors.Is(err, ErrEmptyInput) {
		return "⚠️ Empty message: write something or record a voice message"
	}
	if errors.Is(err, ErrUnsupportedLanguage) {
		return fmt.Sprintf("⚠️ %v", err)
	}

	var e *Error
	if !errors.As(err, &e) {
		return fmt.Sprintf("❌ Error: %v", err)
	}

	switch e.Kind {
	case KindUnauthorized:
		return fmt.Sprintf("❌ Error: %s token not authorized! Check the credential and its permissions.", e.Service)
	case KindRemoteService:
		return fmt.Sprintf("❌ %s error %d: %s", e.Service, e.StatusCode, e.Body)
	case KindRecognition:
		return fmt.Sprintf("🎤 Could not understand the audio: %v", e.Err)
	default:
		return fmt.Sprintf("❌ Error: %v", e)
	}
}

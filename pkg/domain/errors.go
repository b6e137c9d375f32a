package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrNoImage is returned when the image service answered successfully
	// but the payload carried no image.
	ErrNoImage = errors.New("no image produced")

	ErrEmptyInput          = errors.New("empty message")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindUnauthorized
	KindRemoteService
	KindTransport
	KindMalformedResponse
	KindRecognition
	KindNoImage
	KindInvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindRemoteService:
		return "remote_service"
	case KindTransport:
		return "transport"
	case KindMalformedResponse:
		return "malformed_response"
	case KindRecognition:
		return "recognition"
	case KindNoImage:
		return "no_image"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is a failure of a remote collaborator, classified by Kind.
type Error struct {
	Kind       ErrorKind
	Service    string
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("%s: status %d: %s", e.Service, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Service, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Service, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Service, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// StatusError classifies a non-2xx HTTP answer. The body is truncated to maxErrorBody runes.
func StatusError(service string, statusCode int, body []byte) *Error {
	kind := KindRemoteService
	if statusCode == 401 {
		kind = KindUnauthorized
	}
	return &Error{
		Kind:       kind,
		Service:    service,
		StatusCode: statusCode,
		Body:       Truncate(string(body), maxErrorBody),
	}
}

func TransportError(service string, err error) *Error {
	return &Error{Kind: KindTransport, Service: service, Err: err}
}

func MalformedError(service string, err error) *Error {
	return &Error{Kind: KindMalformedResponse, Service: service, Err: err}
}

func RecognitionError(service string, err error) *Error {
	return &Error{Kind: KindRecognition, Service: service, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, ErrNoImage) {
		return KindNoImage
	}
	if errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrUnsupportedLanguage) {
		return KindInvalidInput
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

const maxErrorBody = 150

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

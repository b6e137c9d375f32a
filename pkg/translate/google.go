package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

const (
	DefaultGoogleURL = "https://translate.googleapis.com/translate_a/single"

	translateService = "translation"
	sourceAutoDetect = "auto"
)

type googleTranslator struct {
	url string
	hc  *http.Client
}

// NewGoogleTranslator talks to the public Google Translate endpoint used by the web widget.
func NewGoogleTranslator(url string, timeout time.Duration) *googleTranslator {
	return &googleTranslator{
		url: url,
		hc:  &http.Client{Timeout: timeout},
	}
}

// Translate detects the source language and translates text into target.
func (g *googleTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", sourceAutoDetect)
	query.Set("tl", target)
	query.Set("dt", "t")

	form := url.Values{}
	form.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"?"+query.Encode(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.hc.Do(req)
	if err != nil {
		return "", domain.TransportError(translateService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.TransportError(translateService, fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", domain.StatusError(translateService, resp.StatusCode, body)
	}

	translated, err := parseSegments(body)
	if err != nil {
		return "", domain.MalformedError(translateService, err)
	}

	return translated, nil
}

// parseSegments extracts the translated sentences from a response shaped like
// [[["Hello","Ciao",...],["world","mondo",...]],null,"it"].
func parseSegments(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(payload) == 0 {
		return "", errors.New("empty response")
	}

	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("decoding segments: %w", err)
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if s, ok := segment[0].(string); ok {
			sb.WriteString(s)
		}
	}

	if sb.Len() == 0 {
		return "", errors.New("no translated segments")
	}

	return sb.String(), nil
}

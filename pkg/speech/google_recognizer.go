package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

const (
	DefaultGoogleRecognizerURL = "http://www.google.com/speech-api/v2/recognize"

	recognizerService = "speech"
)

type audioConverter interface {
	IsWAV(data []byte) bool
	ConvertToWAV(ctx context.Context, data []byte) ([]byte, error)
	EncodeFLAC(wavData []byte) ([]byte, int, error)
}

type alternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

type result struct {
	Alternative []alternative `json:"alternative"`
	Final       bool          `json:"final"`
}

type recognizeResponse struct {
	Result []result `json:"result"`
}

type googleRecognizer struct {
	url       string
	key       string
	hc        *http.Client
	converter audioConverter
}

// NewGoogleRecognizer uses the Google speech API v2 that expects a FLAC body.
func NewGoogleRecognizer(url, key string, timeout time.Duration, converter audioConverter) *googleRecognizer {
	return &googleRecognizer{
		url:       url,
		key:       key,
		hc:        &http.Client{Timeout: timeout},
		converter: converter,
	}
}

func (g *googleRecognizer) TranscribeAudio(ctx context.Context, name string, data []byte, language string) (string, error) {
	flacData, sampleRate, err := g.toFLAC(ctx, data)
	if err != nil {
		return "", domain.RecognitionError(recognizerService, fmt.Errorf("preparing %s: %w", name, err))
	}

	query := url.Values{}
	query.Set("client", "chromium")
	query.Set("lang", recognizerLanguage(language))
	query.Set("key", g.key)
	query.Set("pFilter", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"?"+query.Encode(), bytes.NewReader(flacData))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", fmt.Sprintf("audio/x-flac; rate=%d", sampleRate))

	resp, err := g.hc.Do(req)
	if err != nil {
		return "", domain.TransportError(recognizerService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.TransportError(recognizerService, fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", domain.StatusError(recognizerService, resp.StatusCode, body)
	}

	transcript, confidence, err := bestTranscript(body)
	if err != nil {
		return "", domain.RecognitionError(recognizerService, err)
	}

	slog.DebugContext(ctx, "Speech recognized", "confidence", confidence, "length", len(transcript))

	return transcript, nil
}

func (g *googleRecognizer) toFLAC(ctx context.Context, data []byte) ([]byte, int, error) {
	wavData := data
	if !g.converter.IsWAV(data) {
		var err error
		if wavData, err = g.converter.ConvertToWAV(ctx, data); err != nil {
			return nil, 0, err
		}
	}
	return g.converter.EncodeFLAC(wavData)
}

// bestTranscript reads the newline separated JSON objects returned by the API.
// The first object is usually an empty {"result":[]}.
func bestTranscript(body []byte) (string, float64, error) {
	for _, line := range strings.Split(string(body), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		var response recognizeResponse
		if err := json.Unmarshal([]byte(line), &response); err != nil {
			return "", 0, fmt.Errorf("decoding response: %w", err)
		}

		if len(response.Result) == 0 {
			continue
		}

		best, ok := bestHypothesis(response.Result[0].Alternative)
		if !ok {
			return "", 0, errors.New("no alternatives found")
		}
		return best.Transcript, best.Confidence, nil
	}

	return "", 0, errors.New("audio not understood")
}

func bestHypothesis(alternatives []alternative) (alternative, bool) {
	var best alternative
	highest := -1.0

	for _, a := range alternatives {
		if strings.TrimSpace(a.Transcript) != "" && a.Confidence > highest {
			highest = a.Confidence
			best = a
		}
	}

	return best, highest >= 0
}

func recognizerLanguage(language string) string {
	switch language {
	case "", "en":
		return "en-US"
	case "pt":
		return "pt-BR"
	default:
		return language
	}
}

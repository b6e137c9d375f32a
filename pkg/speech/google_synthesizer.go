package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

const (
	DefaultGoogleTTSURL = "https://translate.google.com/translate_tts"

	synthesizerService = "text-to-speech"
	maxChunkLength     = 200
)

type googleSynthesizer struct {
	url string
	hc  *http.Client
}

// NewGoogleSynthesizer speaks through the Google Translate TTS endpoint and
// returns MP3 audio.
func NewGoogleSynthesizer(url string, timeout time.Duration) *googleSynthesizer {
	return &googleSynthesizer{
		url: url,
		hc:  &http.Client{Timeout: timeout},
	}
}

// Synthesize expects language to already be in the synthesizer's dialect (e.g. "pt-br").
func (g *googleSynthesizer) Synthesize(ctx context.Context, text, language string) (*domain.Audio, error) {
	chunks := splitText(text, maxChunkLength)
	if len(chunks) == 0 {
		return nil, errors.New("nothing to synthesize")
	}

	var buf bytes.Buffer
	for i, chunk := range chunks {
		if err := g.fetchChunk(ctx, &buf, chunk, language, i, len(chunks)); err != nil {
			return nil, fmt.Errorf("synthesizing chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}

	return &domain.Audio{Data: buf.Bytes(), MIMEType: "audio/mpeg"}, nil
}

func (g *googleSynthesizer) fetchChunk(ctx context.Context, w io.Writer, chunk, language string, idx, total int) error {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("q", chunk)
	query.Set("tl", language)
	query.Set("idx", strconv.Itoa(idx))
	query.Set("total", strconv.Itoa(total))
	query.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := g.hc.Do(req)
	if err != nil {
		return domain.TransportError(synthesizerService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.StatusError(synthesizerService, resp.StatusCode, body)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return domain.TransportError(synthesizerService, fmt.Errorf("reading audio: %w", err))
	}

	return nil
}

// splitText breaks text on whitespace into chunks of at most limit runes.
// Words longer than limit are hard split.
func splitText(text string, limit int) []string {
	var (
		chunks  []string
		current strings.Builder
		size    int
	)

	flush := func() {
		if size > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			size = 0
		}
	}

	for _, word := range strings.Fields(text) {
		runes := []rune(word)
		for len(runes) > limit {
			flush()
			chunks = append(chunks, string(runes[:limit]))
			runes = runes[limit:]
		}
		if len(runes) == 0 {
			continue
		}

		n := len(runes)
		if size > 0 && size+1+n > limit {
			flush()
		}
		if size > 0 {
			current.WriteByte(' ')
			size++
		}
		current.WriteString(string(runes))
		size += n
	}
	flush()

	return chunks
}

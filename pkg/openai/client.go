package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	sdk "github.com/sashabaranov/go-openai"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

const (
	chatService   = "chat"
	speechService = "speech"
)

type client struct {
	token    string
	baseURL  string
	hc       *http.Client
	api      *sdk.Client
	sttModel string
}

// NewClient creates a client for an OpenAI compatible API (Groq by default).
// A missing token is not an error: the remote service rejects the calls instead.
func NewClient(token, baseURL, sttModel string, timeout time.Duration) (*client, error) {
	if baseURL == "" {
		return nil, errors.New("base url is empty")
	}
	if token == "" {
		slog.Warn("Chat API token is empty, requests will be rejected by the remote service")
	}

	baseURL = strings.TrimRight(baseURL, "/")
	hc := &http.Client{Timeout: timeout}

	cfg := sdk.DefaultConfig(token)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = hc

	return &client{
		token:    token,
		baseURL:  baseURL,
		hc:       hc,
		api:      sdk.NewClientWithConfig(cfg),
		sttModel: sttModel,
	}, nil
}

// CreateChatCompletion sends the request and returns the trimmed content of the first choice.
func (c *client) CreateChatCompletion(ctx context.Context, request domain.ChatRequest) (string, error) {
	body, err := json.Marshal(toChatCompletionRequest(request))
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", domain.TransportError(chatService, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.TransportError(chatService, fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", domain.StatusError(chatService, resp.StatusCode, respBody)
	}

	var chatResponse sdk.ChatCompletionResponse
	if err := json.Unmarshal(respBody, &chatResponse); err != nil {
		return "", domain.MalformedError(chatService, fmt.Errorf("decoding response data: %w", err))
	}

	if len(chatResponse.Choices) == 0 {
		return "", domain.MalformedError(chatService, errors.New("no choices in response"))
	}

	content := strings.TrimSpace(chatResponse.Choices[0].Message.Content)
	if content == "" {
		return "", domain.MalformedError(chatService, errors.New("empty message content"))
	}

	return content, nil
}

func toChatCompletionRequest(request domain.ChatRequest) sdk.ChatCompletionRequest {
	messages := make([]sdk.ChatCompletionMessage, 0, len(request.Messages))
	for _, m := range request.Messages {
		messages = append(messages, sdk.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	return sdk.ChatCompletionRequest{
		Model:       request.Model,
		Messages:    messages,
		Temperature: request.Temperature,
		MaxTokens:   request.MaxTokens,
	}
}

// TranscribeAudio sends the clip to the transcription endpoint. name is only used
// by the remote side to guess the audio format from its extension.
func (c *client) TranscribeAudio(ctx context.Context, name string, data []byte, language string) (string, error) {
	resp, err := c.api.CreateTranscription(ctx, sdk.AudioRequest{
		Model:    c.sttModel,
		Reader:   bytes.NewReader(data),
		FilePath: name,
		Language: language,
	})
	if err != nil {
		return "", classifySDKError(speechService, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", domain.RecognitionError(speechService, errors.New("empty transcription"))
	}

	return text, nil
}

// CheckToken calls the models endpoint and reports the raw status and body.
func (c *client) CheckToken(ctx context.Context) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return 0, nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, domain.TransportError(chatService, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body, nil
}

func classifySDKError(service string, err error) error {
	var apiErr *sdk.APIError
	if errors.As(err, &apiErr) {
		return domain.StatusError(service, apiErr.HTTPStatusCode, []byte(apiErr.Message))
	}

	var reqErr *sdk.RequestError
	if errors.As(err, &reqErr) {
		return domain.StatusError(service, reqErr.HTTPStatusCode, []byte(reqErr.Error()))
	}

	return domain.TransportError(service, err)
}

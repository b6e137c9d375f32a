package huggingface

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

const (
	imageService = "image"

	// TokenCheckPrompt is sent by CheckToken to exercise the inference permission.
	TokenCheckPrompt = "a smiling cat wearing sunglasses"
)

type client struct {
	token string
	url   string
	hc    *http.Client
}

func NewClient(token, url string, timeout time.Duration) *client {
	if token == "" {
		slog.Warn("Image API token is empty, requests will be rejected by the remote service")
	}

	return &client{
		token: token,
		url:   url,
		hc:    &http.Client{Timeout: timeout},
	}
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type inferenceResponse struct {
	ImageBase64 string `json:"image_base64"`
}

// GenerateImage posts the prompt and returns the encoded image.
// It returns domain.ErrNoImage when the service answered without an image.
func (c *client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	status, body, err := c.post(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, domain.StatusError(imageService, status, body)
	}

	return DecodeImage(body)
}

// CheckToken generates a test image and reports the raw status and body.
func (c *client) CheckToken(ctx context.Context) (int, []byte, error) {
	return c.post(ctx, TokenCheckPrompt)
}

func (c *client) post(ctx context.Context, prompt string) (int, []byte, error) {
	payload, err := json.Marshal(inferenceRequest{Inputs: prompt})
	if err != nil {
		return 0, nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, domain.TransportError(imageService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, domain.TransportError(imageService, fmt.Errorf("reading response body: %w", err))
	}

	return resp.StatusCode, body, nil
}

// DecodeImage accepts either raw image bytes or a JSON envelope with a base64
// "image_base64" field.
func DecodeImage(body []byte) ([]byte, error) {
	if isImage(body) {
		return body, nil
	}

	var envelope inferenceResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.ImageBase64 == "" {
		return nil, domain.ErrNoImage
	}

	data, err := base64.StdEncoding.DecodeString(envelope.ImageBase64)
	if err != nil {
		return nil, domain.MalformedError(imageService, fmt.Errorf("base64 decoding: %w", err))
	}

	return data, nil
}

func isImage(data []byte) bool {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	return err == nil && cfg.Width > 0 && cfg.Height > 0
}

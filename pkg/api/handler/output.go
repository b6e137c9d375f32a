package handler

import (
	"encoding/base64"

	"github.com/gofiber/fiber/v2"

	"github.com/dskvich/chatai-assistant/pkg/domain"
	"github.com/dskvich/chatai-assistant/pkg/render"
)

type OutputResponse struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	HTML      string `json:"html,omitempty"`
	Audio     string `json:"audio,omitempty"`
	Image     string `json:"image,omitempty"`
	PromptID  string `json:"prompt_id,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

func newOutputResponse(out domain.Output) OutputResponse {
	resp := OutputResponse{
		Kind:    out.Kind.String(),
		Message: out.Message(),
	}

	switch out.Kind {
	case domain.OutputText:
		resp.HTML = render.ToHTML(out.Text)
		if out.Audio != nil && len(out.Audio.Data) > 0 {
			resp.Audio = dataURI(out.Audio.MIMEType, out.Audio.Data)
		}
	case domain.OutputImage:
		resp.Image = dataURI(out.Image.MIMEType, out.Image.Data)
		resp.PromptID = out.Image.PromptID
	case domain.OutputFailure:
		resp.ErrorKind = domain.KindOf(out.Err).String()
	}

	return resp
}

func dataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// statusCode maps a turn result to the HTTP status of the answer.
func statusCode(out domain.Output) int {
	if !out.Failed() {
		return fiber.StatusOK
	}

	switch domain.KindOf(out.Err) {
	case domain.KindInvalidInput:
		return fiber.StatusBadRequest
	case domain.KindRecognition:
		return fiber.StatusUnprocessableEntity
	case domain.KindUnauthorized, domain.KindRemoteService, domain.KindTransport,
		domain.KindMalformedResponse, domain.KindNoImage:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

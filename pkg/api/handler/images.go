package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dskvich/chatai-assistant/pkg/api/response"
	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type images struct {
	assistant Assistant
	writer    response.JSONResponseWriter
}

func NewImages(assistant Assistant) *images {
	return &images{
		assistant: assistant,
	}
}

// Regenerate produces a new image from a previously stored prompt.
func (h *images) Regenerate(c *fiber.Ctx) error {
	promptID := c.Params("id")
	if promptID == "" {
		return h.writer.WriteErrorResponse(c, fiber.StatusBadRequest, "Prompt id is missing.")
	}

	out := h.assistant.RegenerateImage(c.UserContext(), promptID)
	if out.Failed() && errors.Is(out.Err, domain.ErrNotFound) {
		return h.writer.WriteErrorResponse(c, fiber.StatusNotFound, out.Message())
	}

	return c.Status(statusCode(out)).JSON(newOutputResponse(out))
}

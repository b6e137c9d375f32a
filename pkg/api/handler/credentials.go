package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dskvich/chatai-assistant/pkg/api/response"
)

type credentials struct {
	assistant Assistant
	writer    response.JSONResponseWriter
}

func NewCredentials(assistant Assistant) *credentials {
	return &credentials{
		assistant: assistant,
	}
}

func (h *credentials) Check(c *fiber.Ctx) error {
	return h.writer.WriteSuccessResponse(c, fiber.Map{
		"results": h.assistant.CheckCredentials(c.UserContext()),
	})
}

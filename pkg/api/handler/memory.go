package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dskvich/chatai-assistant/pkg/api/response"
)

type memory struct {
	assistant Assistant
	writer    response.JSONResponseWriter
}

func NewMemory(assistant Assistant) *memory {
	return &memory{
		assistant: assistant,
	}
}

func (m *memory) Clear(c *fiber.Ctx) error {
	message := m.assistant.Clear(c.UserContext(), sessionID(c))

	return m.writer.WriteSuccessResponse(c, fiber.Map{
		"message": message,
	})
}

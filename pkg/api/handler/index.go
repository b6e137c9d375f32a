package handler

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

//go:embed templates/index.html
var templates embed.FS

var indexTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

type indexPage struct {
	Languages []string
	Selected  string
	Modes     []domain.Mode
	Turns     []domain.Turn
}

type index struct {
	assistant Assistant
}

func NewIndex(assistant Assistant) *index {
	return &index{
		assistant: assistant,
	}
}

func (h *index) Show(c *fiber.Ctx) error {
	session := h.assistant.Session(c.UserContext(), sessionID(c))

	page := indexPage{
		Languages: h.assistant.Languages(),
		Selected:  session.Language,
		Modes:     []domain.Mode{domain.ModeAuto, domain.ModeChat, domain.ModeImage},
		Turns:     session.Conversation.Turns(),
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "rendering page: "+err.Error())
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

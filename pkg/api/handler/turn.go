package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/dskvich/chatai-assistant/pkg/api/response"
	"github.com/dskvich/chatai-assistant/pkg/domain"
	"github.com/dskvich/chatai-assistant/pkg/logger"
)

const audioField = "audio"

type TurnRequest struct {
	Text     string `json:"text" form:"text"`
	Language string `json:"language" form:"language"`
	Mode     string `json:"mode" form:"mode"`
}

type turn struct {
	assistant Assistant
	writer    response.JSONResponseWriter
}

func NewTurn(assistant Assistant) *turn {
	return &turn{
		assistant: assistant,
	}
}

func (t *turn) Handle(c *fiber.Ctx) error {
	var req TurnRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return t.writer.WriteErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
	}

	mode, err := parseMode(req.Mode)
	if err != nil {
		return t.writer.WriteErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	in := domain.Input{
		Text:     req.Text,
		Language: req.Language,
		Mode:     mode,
	}

	audioPath, cleanup, err := t.saveAudio(c)
	if err != nil {
		return t.writer.WriteErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	defer cleanup()
	in.AudioPath = audioPath

	out := t.assistant.Handle(c.UserContext(), sessionID(c), in)

	return c.Status(statusCode(out)).JSON(newOutputResponse(out))
}

// saveAudio stores the uploaded clip in a temporary file removed by cleanup.
func (t *turn) saveAudio(c *fiber.Ctx) (string, func(), error) {
	noop := func() {}

	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return "", noop, nil
	}

	fh, err := c.FormFile(audioField)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) {
			return "", noop, nil
		}
		return "", noop, fmt.Errorf("reading audio upload: %w", err)
	}

	dir, err := os.MkdirTemp("", "assistant-audio-*")
	if err != nil {
		return "", noop, fmt.Errorf("creating temp dir: %w", err)
	}
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			slog.WarnContext(c.UserContext(), "Removing uploaded audio", logger.Err(err))
		}
	}

	path := filepath.Join(dir, uploadName(fh.Filename))
	if err := c.SaveFile(fh, path); err != nil {
		cleanup()
		return "", noop, fmt.Errorf("saving audio upload: %w", err)
	}

	slog.InfoContext(c.UserContext(), "Audio uploaded", "file", fh.Filename, "size", fh.Size)

	return path, cleanup, nil
}

var audioExtension = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// uploadName keeps only the extension of the client file name, which the
// transcriber uses to tell the audio format.
func uploadName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if !audioExtension.MatchString(ext) {
		ext = ""
	}
	return "clip" + ext
}

func parseMode(raw string) (domain.Mode, error) {
	switch mode := domain.Mode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "", domain.ModeAuto:
		return domain.ModeAuto, nil
	case domain.ModeChat, domain.ModeImage:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported mode %q", raw)
	}
}

package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/dskvich/chatai-assistant/pkg/api/handler"
	"github.com/dskvich/chatai-assistant/pkg/api/response"
	"github.com/dskvich/chatai-assistant/pkg/logger"
)

const (
	bodyLimit       = 25 << 20
	requestIDHeader = "X-Request-ID"
)

// NewRouter wires the web page and the JSON API around the assistant.
func NewRouter(assistant handler.Assistant) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             bodyLimit,
		ReadTimeout:           30 * time.Second,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestID)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/", handler.NewIndex(assistant).Show)

	api := app.Group("/api")
	api.Post("/turn", handler.NewTurn(assistant).Handle)
	api.Post("/memory/clear", handler.NewMemory(assistant).Clear)
	api.Get("/credentials", handler.NewCredentials(assistant).Check)
	api.Get("/images/:id", handler.NewImages(assistant).Regenerate)

	return app
}

func requestID(c *fiber.Ctx) error {
	id := c.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDHeader, id)
	c.SetUserContext(logger.ContextWithRequestID(c.UserContext(), id))

	start := time.Now()
	err := c.Next()

	slog.InfoContext(c.UserContext(), "Request handled",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
	)

	return err
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	slog.ErrorContext(c.UserContext(), "Request failed", "path", c.Path(), logger.Err(err))

	var writer response.JSONResponseWriter
	return writer.WriteErrorResponse(c, code, err.Error())
}

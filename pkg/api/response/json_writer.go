package response

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/dskvich/chatai-assistant/pkg/logger"
)

type JSONResponseWriter struct{}

func (j *JSONResponseWriter) WriteSuccessResponse(c *fiber.Ctx, data any) error {
	return j.write(c, fiber.StatusOK, data)
}

func (j *JSONResponseWriter) WriteErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return j.write(c, statusCode, ErrorResponse{Error: message})
}

func (j *JSONResponseWriter) write(c *fiber.Ctx, statusCode int, data any) error {
	if err := c.Status(statusCode).JSON(data); err != nil {
		slog.ErrorContext(c.UserContext(), "Encoding response", "status", statusCode, logger.Err(err))
		return err
	}
	return nil
}

type ErrorResponse struct {
	Error string `json:"error"`
}

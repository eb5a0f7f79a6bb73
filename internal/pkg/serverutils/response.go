package serverutils

import (
	"errors"

	"swadesh-ai-be/internal/apperror"
	"swadesh-ai-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorHandler renders every error as {"error": "..."}. Only messages from
// the apperror taxonomy reach the client.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := statusOf(err)
		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method": c.Method(),
				"path":   c.Path(),
				"status": status,
				"error":  err.Error(),
			})
		}

		return c.Status(status).JSON(ErrorBody{Error: message})
	}
}

func statusOf(err error) (int, string) {
	var appErr *apperror.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		return appErr.Kind.StatusCode(), appErr.Message
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}

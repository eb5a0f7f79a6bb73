package serverutils

import (
	"strings"
	"time"

	"swadesh-ai-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs every /api request after it completes.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(c.Path(), "/api") {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error handler has not written the response yet.
			status, _ = statusOf(err)
		}

		details := map[string]interface{}{
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		// Logging must not trigger a lookup the handler skipped.
		if id, ok := resolvedIdentity(c); ok {
			details["identity"] = id.Kind().String()
		}
		log.Info("HTTP", c.Method()+" "+c.Path(), details)
		return err
	}
}

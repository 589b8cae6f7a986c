package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TimerMetrics tracks request duration and logs it.
// Errors from the chain are handed to the app's error handler here, so the
// logged status is the one the client receives.
func TimerMetrics(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()

		if err := c.Next(); err != nil {
			if err := c.App().ErrorHandler(c, err); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		logger.Info("[METRICS]",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(startTime)),
			zap.Any("request_id", c.Locals("request_id")),
		)

		return nil
	}
}

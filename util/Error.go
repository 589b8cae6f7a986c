package util

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewErrorHandler returns the fiber error handler used by the app.
// Routing errors (*fiber.Error) keep their status code. Anything else that
// escapes a handler, recovered panics included, is reported the same way the
// webhook reports failures: 200 with {"error": "<message>"}.
func NewErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		logger.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"error": err.Error()})
	}
}

package serverutils

import (
	"resort-concierge-be/internal/constant"
	"resort-concierge-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts any error or panic escaping a handler
// into the generic server answer. Guests must never see internals; the
// detail goes to the logs only.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server", "panic recovered", map[string]interface{}{
					"panic": r,
					"path":  ctx.Path(),
				})
				_ = ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"answer": constant.GenericServerError,
				})
			}
		}()

		err := ctx.Next()
		if err == nil {
			return nil
		}

		log.Error("server", "request failed", map[string]interface{}{
			"error": err.Error(),
			"path":  ctx.Path(),
		})

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"answer": constant.GenericServerError,
		})
	}
}

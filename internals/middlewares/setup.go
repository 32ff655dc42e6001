package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"kelaskode_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware dasar (urutan penting:
// recovery paling luar, baru logger & CORS).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}

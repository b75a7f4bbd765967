package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// Setup wires the app-wide middleware stack. Auth and role guards are
// attached per route group, not here.
func Setup(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}

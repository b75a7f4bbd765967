package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	authController "schoolhub_backend/internals/features/users/auth/controller"
	middlewares "schoolhub_backend/internals/middlewares"
)

// AuthRoutes mounts the public auth surface plus the authed me/logout.
func AuthRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	ctrl := authController.NewAuthController(db, cfg)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh", ctrl.Refresh)

	authed := auth.Group("", middlewares.Auth(db, cfg.JWTSecret))
	authed.Post("/logout", ctrl.Logout)
	authed.Get("/me", ctrl.Me)
}

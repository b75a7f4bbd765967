package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	authRoute "schoolhub_backend/internals/features/users/auth/route"
	"schoolhub_backend/internals/middlewares"
	routeDetails "schoolhub_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up auth routes...")
	authRoute.AuthRoutes(app, db, cfg)

	// Public endpoints: no token required.
	public := app.Group("/api")
	routeDetails.SchoolPublicRoutes(public, db, cfg.UploadDir)

	// Everything else sits behind the JWT middleware.
	api := app.Group("/api", middlewares.Auth(db, cfg.JWTSecret))

	log.Println("[INFO] Mounting user routes...")
	routeDetails.UserRoutes(api, db, cfg.UploadDir)

	log.Println("[INFO] Mounting academic routes...")
	routeDetails.AcademicRoutes(api, db, cfg.UploadDir)

	log.Println("[INFO] Mounting school routes...")
	routeDetails.SchoolRoutes(api, db, cfg.UploadDir)

	log.Println("[INFO] Mounting finance routes...")
	routeDetails.FinanceRoutes(api, db, cfg)
}

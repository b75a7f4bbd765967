package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/certificates/controller"
	userModel "schoolhub_backend/internals/features/users/user/model"
	"schoolhub_backend/internals/middlewares"
)

// CertificateRoutes mounts the authed certificate endpoints. The public
// verify endpoint is mounted separately, outside the auth group.
func CertificateRoutes(r fiber.Router, db *gorm.DB, uploadDir string) {
	ctl := controller.NewCertificateController(db, uploadDir)

	adminOnly := middlewares.RequireRoles(userModel.RoleAdmin)

	certificates := r.Group("/certificates")
	certificates.Get("/", ctl.List)
	certificates.Post("/", adminOnly, ctl.Issue)
	certificates.Get("/:id", ctl.GetByID)
	certificates.Put("/:id/revoke", adminOnly, ctl.Revoke)
	certificates.Get("/:id/download", ctl.Download)
}

// PublicCertificateRoutes mounts the unauthenticated verify lookup.
func PublicCertificateRoutes(r fiber.Router, db *gorm.DB, uploadDir string) {
	ctl := controller.NewCertificateController(db, uploadDir)
	r.Get("/certificates/verify/:code", ctl.Verify)
}

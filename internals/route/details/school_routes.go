package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateRoute "schoolhub_backend/internals/features/certificates/route"
	documentRoute "schoolhub_backend/internals/features/documents/route"
	feedbackRoute "schoolhub_backend/internals/features/feedback/route"
)

// SchoolRoutes mounts documents, certificates and feedback under the
// authenticated API group.
func SchoolRoutes(r fiber.Router, db *gorm.DB, uploadDir string) {
	documentRoute.DocumentRoutes(r, db, uploadDir)
	certificateRoute.CertificateRoutes(r, db, uploadDir)
	feedbackRoute.FeedbackRoutes(r, db)
}

// SchoolPublicRoutes mounts the endpoints that need no authentication.
func SchoolPublicRoutes(r fiber.Router, db *gorm.DB, uploadDir string) {
	certificateRoute.PublicCertificateRoutes(r, db, uploadDir)
}

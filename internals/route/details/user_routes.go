package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messageRoute "schoolhub_backend/internals/features/messages/route"
	userRoute "schoolhub_backend/internals/features/users/user/route"
)

// UserRoutes mounts users and messaging under the authenticated API
// group.
func UserRoutes(r fiber.Router, db *gorm.DB, uploadDir string) {
	userRoute.UserRoutes(r, db, uploadDir)
	messageRoute.MessageRoutes(r, db)
}

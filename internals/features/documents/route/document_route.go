package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/documents/controller"
	userModel "schoolhub_backend/internals/features/users/user/model"
	"schoolhub_backend/internals/middlewares"
)

func DocumentRoutes(r fiber.Router, db *gorm.DB, uploadDir string) {
	ctl := controller.NewDocumentController(db, uploadDir)

	adminOnly := middlewares.RequireRoles(userModel.RoleAdmin)

	documents := r.Group("/documents")
	documents.Get("/", ctl.List)
	documents.Post("/", ctl.Upload)
	documents.Get("/:id", ctl.GetByID)
	documents.Delete("/:id", ctl.Delete)
	documents.Get("/:id/download", ctl.Download)

	documents.Put("/:id/approve", adminOnly, ctl.Approve)
	documents.Put("/:id/reject", adminOnly, ctl.Reject)

	documents.Post("/:id/share", ctl.Share)
	documents.Delete("/:id/share", ctl.Unshare)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "schoolhub_backend/internals/features/users/user/controller"
	userModel "schoolhub_backend/internals/features/users/user/model"
	middlewares "schoolhub_backend/internals/middlewares"
)

// UserRoutes mounts /users on an authenticated group.
func UserRoutes(r fiber.Router, db *gorm.DB, uploadDir string) {
	ctrl := userController.NewUserController(db, uploadDir)

	users := r.Group("/users")
	users.Get("/", middlewares.RequireRoles(userModel.RoleAdmin), ctrl.List)
	users.Get("/:id", ctrl.GetByID)
	users.Put("/:id", ctrl.Update)
	users.Delete("/:id", middlewares.RequireRoles(userModel.RoleAdmin), ctrl.Delete)
	users.Post("/:id/photo", ctrl.UploadPhoto)
}

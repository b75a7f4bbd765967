package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deptController "schoolhub_backend/internals/features/academics/departments/controller"
	userModel "schoolhub_backend/internals/features/users/user/model"
	middlewares "schoolhub_backend/internals/middlewares"
)

func DepartmentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := deptController.NewDepartmentController(db)
	adminOnly := middlewares.RequireRoles(userModel.RoleAdmin)

	depts := r.Group("/departments")
	depts.Get("/", ctrl.List)
	depts.Get("/:id", ctrl.GetByID)
	depts.Post("/", adminOnly, ctrl.Create)
	depts.Put("/:id", adminOnly, ctrl.Update)
	depts.Delete("/:id", adminOnly, ctrl.Delete)
}

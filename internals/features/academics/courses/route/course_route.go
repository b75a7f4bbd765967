package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "schoolhub_backend/internals/features/academics/courses/controller"
	userModel "schoolhub_backend/internals/features/users/user/model"
	middlewares "schoolhub_backend/internals/middlewares"
)

func CourseRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)
	staffOnly := middlewares.RequireRoles(userModel.RoleAdmin, userModel.RoleTeacher)

	courses := r.Group("/courses")
	courses.Get("/", ctrl.List)
	courses.Get("/:id", ctrl.GetByID)
	courses.Post("/", staffOnly, ctrl.Create)
	courses.Put("/:id", staffOnly, ctrl.Update)
	courses.Delete("/:id", staffOnly, ctrl.Delete)
	courses.Get("/:courseId/students", staffOnly, ctrl.Students)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollController "schoolhub_backend/internals/features/academics/enrollments/controller"
	userModel "schoolhub_backend/internals/features/users/user/model"
	middlewares "schoolhub_backend/internals/middlewares"
)

func EnrollmentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := enrollController.NewEnrollmentController(db)
	staffOnly := middlewares.RequireRoles(userModel.RoleAdmin, userModel.RoleTeacher)

	enrollments := r.Group("/enrollments")
	enrollments.Post("/", ctrl.Enroll)
	enrollments.Post("/unenroll", ctrl.Unenroll)
	enrollments.Post("/complete", staffOnly, ctrl.Complete)
	enrollments.Get("/course/:courseId", staffOnly, ctrl.ListByCourse)
	enrollments.Get("/student/:studentId", ctrl.ListByStudent)
}

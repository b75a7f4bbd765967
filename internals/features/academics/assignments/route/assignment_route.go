package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/assignments/controller"
	userModel "schoolhub_backend/internals/features/users/user/model"
	"schoolhub_backend/internals/middlewares"
)

func AssignmentRoutes(r fiber.Router, db *gorm.DB, uploadDir string) {
	ctl := controller.NewAssignmentController(db, uploadDir)

	staffOnly := middlewares.RequireRoles(userModel.RoleAdmin, userModel.RoleTeacher)

	assignments := r.Group("/assignments")
	assignments.Get("/upcoming", ctl.Upcoming)
	assignments.Get("/", ctl.List)
	assignments.Get("/:id", ctl.GetByID)
	assignments.Post("/", staffOnly, ctl.Create)
	assignments.Put("/:id", staffOnly, ctl.Update)
	assignments.Delete("/:id", staffOnly, ctl.Delete)

	assignments.Post("/:id/submit", ctl.Submit)
	assignments.Get("/:id/submissions", staffOnly, ctl.Submissions)

	submissions := r.Group("/submissions")
	submissions.Put("/:id/grade", staffOnly, ctl.Grade)
}

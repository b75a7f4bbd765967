package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/feedback/controller"
	userModel "schoolhub_backend/internals/features/users/user/model"
	"schoolhub_backend/internals/middlewares"
)

func FeedbackRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewFeedbackController(db)

	staffOnly := middlewares.RequireRoles(userModel.RoleAdmin, userModel.RoleTeacher)

	feedback := r.Group("/feedback")
	feedback.Post("/", ctl.Create)
	feedback.Get("/", staffOnly, ctl.ListByCourse)
	feedback.Get("/mine", ctl.ListByStudent)
	feedback.Get("/summary", ctl.CourseSummary)
	feedback.Get("/students/:studentId", ctl.ListByStudent)
	feedback.Put("/:id/respond", staffOnly, ctl.Respond)
}

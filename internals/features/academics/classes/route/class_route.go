package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "schoolhub_backend/internals/features/academics/classes/controller"
	userModel "schoolhub_backend/internals/features/users/user/model"
	middlewares "schoolhub_backend/internals/middlewares"
)

func ClassRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)
	staffOnly := middlewares.RequireRoles(userModel.RoleAdmin, userModel.RoleTeacher)

	classes := r.Group("/classes")
	classes.Get("/", ctrl.List)
	classes.Get("/:id", ctrl.GetByID)
	classes.Post("/", staffOnly, ctrl.Create)
	classes.Put("/:id", staffOnly, ctrl.Update)
	classes.Delete("/:id", staffOnly, ctrl.Delete)
	classes.Post("/:id/schedules", staffOnly, ctrl.AddSchedule)

	schedules := r.Group("/schedules")
	schedules.Get("/availability", ctrl.Availability)
	schedules.Put("/:id", staffOnly, ctrl.UpdateSchedule)
	schedules.Delete("/:id", staffOnly, ctrl.DeleteSchedule)
}

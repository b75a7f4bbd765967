package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/feedback/dto"
	"schoolhub_backend/internals/features/feedback/service"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type FeedbackController struct {
	Service  *service.FeedbackService
	Validate *validator.Validate
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{
		Service:  service.NewFeedbackService(db),
		Validate: validator.New(),
	}
}

// POST /api/feedback
func (ctl *FeedbackController) Create(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	fb, err := ctl.Service.Create(studentID, req.CourseID, req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Feedback recorded", dto.FromModel(fb))
}

// PUT /api/feedback/:id/respond
func (ctl *FeedbackController) Respond(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid feedback id")
	}

	var req dto.RespondFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	fb, err := ctl.Service.Respond(actorID, id, req.Response)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromModel(fb))
}

// GET /api/feedback?course_id=  (teacher/admin view)
func (ctl *FeedbackController) ListByCourse(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id is required")
	}
	rows, err := ctl.Service.ListByCourse(actorID, courseID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "feedback", dto.FromModels(rows), nil, "")
}

// GET /api/feedback/mine and GET /api/feedback/students/:studentId
func (ctl *FeedbackController) ListByStudent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	studentID := actorID
	if raw := c.Params("studentId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
		}
		if id != actorID && helper.GetUserRole(c) != userModel.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "You cannot list another student's feedback")
		}
		studentID = id
	}

	rows, err := ctl.Service.ListByStudent(studentID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "feedback", dto.FromModels(rows), nil, "")
}

// GET /api/feedback/summary?course_id=
func (ctl *FeedbackController) CourseSummary(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id is required")
	}
	avg, count, err := ctl.Service.CourseSummary(courseID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.CourseSummaryResponse{
		CourseID:      courseID,
		AverageRating: avg,
		Count:         count,
	})
}

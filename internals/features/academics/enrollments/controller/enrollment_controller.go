package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollService "schoolhub_backend/internals/features/academics/enrollments/service"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type EnrollmentController struct {
	Service  *enrollService.EnrollmentService
	validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{
		Service:  enrollService.NewEnrollmentService(db),
		validate: validator.New(),
	}
}

type enrollRequest struct {
	CourseID  uuid.UUID  `json:"course_id" validate:"required"`
	StudentID *uuid.UUID `json:"student_id,omitempty"`
}

// resolveStudent applies the trust rule: a student always acts as
// themselves; an explicit student_id is honored for staff only.
func (h *EnrollmentController) resolveStudent(c *fiber.Ctx, explicit *uuid.UUID) (uuid.UUID, error) {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return uuid.Nil, err
	}
	if explicit == nil || *explicit == actorID {
		return actorID, nil
	}
	role, err := helper.ResolveUserRole(h.Service.DB, actorID)
	if err != nil {
		return uuid.Nil, err
	}
	if !userModel.IsStaff(role) {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Students may only enroll themselves")
	}
	return *explicit, nil
}

// POST /api/enrollments
func (h *EnrollmentController) Enroll(c *fiber.Ctx) error {
	var req enrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID, err := h.resolveStudent(c, req.StudentID)
	if err != nil {
		return helper.FromError(c, err)
	}

	enrollment, err := h.Service.Enroll(req.CourseID, studentID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Enrolled", enrollment)
}

// POST /api/enrollments/unenroll
func (h *EnrollmentController) Unenroll(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req enrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID := actorID
	if req.StudentID != nil {
		studentID = *req.StudentID
	}

	enrollment, err := h.Service.Unenroll(actorID, req.CourseID, studentID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Unenrolled", enrollment)
}

// POST /api/enrollments/complete (owning teacher or admin)
func (h *EnrollmentController) Complete(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req struct {
		CourseID  uuid.UUID `json:"course_id" validate:"required"`
		StudentID uuid.UUID `json:"student_id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	enrollment, err := h.Service.Complete(actorID, req.CourseID, req.StudentID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Enrollment completed", enrollment)
}

// GET /api/enrollments/course/:courseId (staff)
func (h *EnrollmentController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	rows, err := h.Service.ListByCourse(courseID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "enrollments", rows, nil, "")
}

// GET /api/enrollments/student/:studentId (self or staff)
func (h *EnrollmentController) ListByStudent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	if studentID != actorID {
		role, err := helper.ResolveUserRole(h.Service.DB, actorID)
		if err != nil {
			return helper.FromError(c, err)
		}
		if !userModel.IsStaff(role) {
			return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own enrollments")
		}
	}

	rows, err := h.Service.ListByStudent(studentID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "enrollments", rows, nil, "")
}

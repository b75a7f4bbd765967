package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/assignments/dto"
	"schoolhub_backend/internals/features/academics/assignments/service"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

const maxSubmissionSize = 20 * 1024 * 1024 // 20MB

type AssignmentController struct {
	Service   *service.AssignmentService
	UploadDir string
	Validate  *validator.Validate
}

func NewAssignmentController(db *gorm.DB, uploadDir string) *AssignmentController {
	return &AssignmentController{
		Service:   service.NewAssignmentService(db),
		UploadDir: uploadDir,
		Validate:  validator.New(),
	}
}

// GET /api/assignments?course_id=...
func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id is required")
	}
	rows, err := ctl.Service.ListByCourse(courseID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "assignments", dto.FromAssignmentModels(rows), nil, "")
}

// GET /api/assignments/upcoming
func (ctl *AssignmentController) Upcoming(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	rows, err := ctl.Service.UpcomingForStudent(actorID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "assignments", dto.FromAssignmentModels(rows), nil, "")
}

// GET /api/assignments/:id
func (ctl *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid assignment id")
	}
	assignment, err := ctl.Service.Get(id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromAssignmentModel(assignment))
}

// POST /api/assignments
func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	assignment, err := ctl.Service.Create(actorID, req.ToModel())
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Assignment created", dto.FromAssignmentModel(assignment))
}

// PUT /api/assignments/:id
func (ctl *AssignmentController) Update(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid assignment id")
	}

	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	assignment, err := ctl.Service.Update(actorID, id, req.ApplyToModel)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromAssignmentModel(assignment))
}

// DELETE /api/assignments/:id
func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid assignment id")
	}
	if err := ctl.Service.Delete(actorID, id); err != nil {
		return err
	}
	return helper.JsonOK(c, "Assignment deleted", fiber.Map{"deleted": true})
}

// POST /api/assignments/:id/submit (multipart: file)
func (ctl *AssignmentController) Submit(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid assignment id")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	if err := helper.ValidateUpload(fh, maxSubmissionSize, helper.DocumentMIMEs); err != nil {
		return err
	}
	fileURL, err := helper.SaveUpload(c, fh, ctl.UploadDir, "assignments")
	if err != nil {
		return err
	}

	submission, err := ctl.Service.Submit(studentID, assignmentID, fileURL)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Submission received", dto.FromSubmissionModel(submission))
}

// GET /api/assignments/:id/submissions
func (ctl *AssignmentController) Submissions(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid assignment id")
	}
	rows, err := ctl.Service.SubmissionsByAssignment(actorID, assignmentID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "submissions", dto.FromSubmissionModels(rows), nil, "")
}

// PUT /api/submissions/:id/grade
func (ctl *AssignmentController) Grade(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	role := helper.GetUserRole(c)
	if !userModel.IsStaff(role) {
		return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
	}
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid submission id")
	}

	var req dto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	submission, err := ctl.Service.Grade(actorID, submissionID, *req.Grade, req.Feedback)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromSubmissionModel(submission))
}

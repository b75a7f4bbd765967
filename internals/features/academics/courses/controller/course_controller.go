package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseDTO "schoolhub_backend/internals/features/academics/courses/dto"
	courseService "schoolhub_backend/internals/features/academics/courses/service"
	userDTO "schoolhub_backend/internals/features/users/user/dto"
	helper "schoolhub_backend/internals/helpers"
)

type CourseController struct {
	Service  *courseService.CourseService
	validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		Service:  courseService.NewCourseService(db),
		validate: validator.New(),
	}
}

// GET /api/courses?status=&teacher_id=&department_id=
func (h *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var filters courseService.ListFilters
	filters.Status = strings.ToLower(strings.TrimSpace(c.Query("status")))
	if v := c.Query("teacher_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher_id")
		}
		filters.TeacherID = &id
	}
	if v := c.Query("department_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department_id")
		}
		filters.DepartmentID = &id
	}

	courses, total, err := h.Service.List(filters, paging.Offset, paging.Limit)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "courses", courses,
		helper.BuildPagination(total, paging.Page, paging.PerPage), "")
}

// GET /api/courses/:id
func (h *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	course, err := h.Service.Get(id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "", course)
}

// POST /api/courses (teacher/admin). A teacher may only create courses
// they own.
func (h *CourseController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if req.TeacherID == uuid.Nil {
		req.TeacherID = actorID
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	role, err := helper.ResolveUserRole(h.Service.DB, actorID)
	if err != nil {
		return helper.FromError(c, err)
	}
	if role != "admin" && req.TeacherID != actorID {
		return helper.JsonError(c, fiber.StatusForbidden, "Teachers may only create their own courses")
	}

	course, err := h.Service.Create(&req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Course created", course)
}

// PUT /api/courses/:id
func (h *CourseController) Update(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	course, err := h.Service.Update(actorID, id, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Course updated", course)
}

// DELETE /api/courses/:id
func (h *CourseController) Delete(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	if err := h.Service.Delete(actorID, id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Course deleted", fiber.Map{"deleted": true})
}

// GET /api/courses/:courseId/students
func (h *CourseController) Students(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	students, err := h.Service.Roster(courseID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "students", userDTO.FromModels(students), nil, "")
}

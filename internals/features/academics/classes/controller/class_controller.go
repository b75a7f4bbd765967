package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDTO "schoolhub_backend/internals/features/academics/classes/dto"
	classModel "schoolhub_backend/internals/features/academics/classes/model"
	classService "schoolhub_backend/internals/features/academics/classes/service"
	helper "schoolhub_backend/internals/helpers"
)

type ClassController struct {
	Service  *classService.ClassService
	validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{
		Service:  classService.NewClassService(db),
		validate: validator.New(),
	}
}

// GET /api/classes?course_id=
func (h *ClassController) List(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id query parameter is required")
	}
	classes, err := h.Service.ListByCourse(courseID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "classes", classes, nil, "")
}

// GET /api/classes/:id
func (h *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	class, err := h.Service.Get(id)
	if err != nil {
		return helper.FromError(c, err)
	}
	schedules, err := h.Service.ListSchedules(id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "", fiber.Map{"class": class, "schedules": schedules})
}

// POST /api/classes (staff)
func (h *ClassController) Create(c *fiber.Ctx) error {
	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class, schedules := req.ToModels()
	created, err := h.Service.Create(class, schedules)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Class created", created)
}

// PUT /api/classes/:id
func (h *ClassController) Update(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class, err := h.Service.Update(actorID, id, func(m *classModel.ClassModel) {
		req.ApplyToModel(m)
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Class updated", class)
}

// DELETE /api/classes/:id
func (h *ClassController) Delete(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	if err := h.Service.Delete(actorID, id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Class deleted", fiber.Map{"deleted": true})
}

// POST /api/classes/:id/schedules
func (h *ClassController) AddSchedule(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var req classDTO.ScheduleInput
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	schedule, err := h.Service.AddSchedule(actorID, id,
		req.DayOfWeek, strings.TrimSpace(req.StartTime), strings.TrimSpace(req.EndTime))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Schedule created", schedule)
}

// PUT /api/schedules/:id
func (h *ClassController) UpdateSchedule(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var req classDTO.ScheduleInput
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	schedule, err := h.Service.UpdateSchedule(actorID, id,
		req.DayOfWeek, strings.TrimSpace(req.StartTime), strings.TrimSpace(req.EndTime))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Schedule updated", schedule)
}

// DELETE /api/schedules/:id
func (h *ClassController) DeleteSchedule(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}
	if err := h.Service.DeleteSchedule(actorID, id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Schedule deleted", fiber.Map{"deleted": true})
}

// GET /api/schedules/availability?room=&teacher_id=&day=&start=&end=
func (h *ClassController) Availability(c *fiber.Ctx) error {
	day, err := strconv.Atoi(c.Query("day"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "day query parameter is required")
	}
	start := strings.TrimSpace(c.Query("start"))
	end := strings.TrimSpace(c.Query("end"))
	if err := classService.ValidateInterval(day, start, end); err != nil {
		return helper.FromError(c, err)
	}

	room := strings.TrimSpace(c.Query("room"))
	teacherID := uuid.Nil
	if v := c.Query("teacher_id"); v != "" {
		teacherID, err = uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher_id")
		}
	}
	if room == "" && teacherID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "room or teacher_id is required")
	}

	available, err := h.Service.Schedules.Available(room, teacherID, day, start, end)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "", fiber.Map{"available": available})
}

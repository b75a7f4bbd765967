package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	deptDTO "schoolhub_backend/internals/features/academics/departments/dto"
	deptService "schoolhub_backend/internals/features/academics/departments/service"
	helper "schoolhub_backend/internals/helpers"
)

type DepartmentController struct {
	Service  *deptService.DepartmentService
	validate *validator.Validate
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{Service: deptService.NewDepartmentService(db), validate: validator.New()}
}

// GET /api/departments
func (h *DepartmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	depts, total, err := h.Service.List(paging)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "departments", depts,
		helper.BuildPagination(total, paging.Page, paging.PerPage), "")
}

// GET /api/departments/:id
func (h *DepartmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}
	dept, err := h.Service.Get(id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "", dept)
}

// POST /api/departments (admin)
func (h *DepartmentController) Create(c *fiber.Ctx) error {
	var req deptDTO.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	dept, err := h.Service.Create(req.ToModel())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Department created", dept)
}

// PUT /api/departments/:id (admin)
func (h *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	var req deptDTO.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	dept, err := h.Service.Update(id, req.ApplyToModel)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Department updated", dept)
}

// DELETE /api/departments/:id (admin)
func (h *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}
	if err := h.Service.Delete(id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Department deleted", fiber.Map{"deleted": true})
}

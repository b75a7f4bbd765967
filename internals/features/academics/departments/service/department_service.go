package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "schoolhub_backend/internals/features/academics/courses/model"
	deptModel "schoolhub_backend/internals/features/academics/departments/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type DepartmentService struct {
	DB *gorm.DB
}

func NewDepartmentService(db *gorm.DB) *DepartmentService {
	return &DepartmentService{DB: db}
}

func (s *DepartmentService) List(paging helper.Paging) ([]deptModel.DepartmentModel, int64, error) {
	var total int64
	if err := s.DB.Model(&deptModel.DepartmentModel{}).Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to list departments")
	}

	var depts []deptModel.DepartmentModel
	if err := s.DB.Order("name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&depts).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to list departments")
	}
	return depts, total, nil
}

func (s *DepartmentService) Get(id uuid.UUID) (*deptModel.DepartmentModel, error) {
	var dept deptModel.DepartmentModel
	if err := s.DB.First(&dept, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Department not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load department")
	}
	return &dept, nil
}

func (s *DepartmentService) Create(dept *deptModel.DepartmentModel) (*deptModel.DepartmentModel, error) {
	if dept.HeadTeacherID != nil {
		if err := s.ensureHeadTeacher(*dept.HeadTeacherID); err != nil {
			return nil, err
		}
	}
	if err := s.DB.Create(dept).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, fiber.NewError(fiber.StatusConflict, "Department name already exists")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create department")
	}
	return dept, nil
}

func (s *DepartmentService) Update(id uuid.UUID, apply func(*deptModel.DepartmentModel)) (*deptModel.DepartmentModel, error) {
	dept, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	apply(dept)

	if dept.HeadTeacherID != nil {
		if err := s.ensureHeadTeacher(*dept.HeadTeacherID); err != nil {
			return nil, err
		}
	}
	if err := s.DB.Save(dept).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, fiber.NewError(fiber.StatusConflict, "Department name already exists")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update department")
	}
	return dept, nil
}

// Delete detaches the department's courses and removes the row in one
// transaction so a half-removed department can't leave dangling
// references.
func (s *DepartmentService) Delete(id uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&courseModel.CourseModel{}).
			Where("department_id = ?", id).
			Update("department_id", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to detach courses")
		}
		res := tx.Unscoped().Delete(&deptModel.DepartmentModel{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete department")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Department not found")
		}
		return nil
	})
}

func (s *DepartmentService) ensureHeadTeacher(id uuid.UUID) error {
	var user userModel.UserModel
	if err := s.DB.Select("id", "role").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Head teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load head teacher")
	}
	if !userModel.IsStaff(user.Role) {
		return fiber.NewError(fiber.StatusBadRequest, "Head teacher must have the teacher or admin role")
	}
	return nil
}

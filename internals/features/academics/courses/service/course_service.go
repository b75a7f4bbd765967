package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseDTO "schoolhub_backend/internals/features/academics/courses/dto"
	courseModel "schoolhub_backend/internals/features/academics/courses/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type CourseService struct {
	DB *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{DB: db}
}

type ListFilters struct {
	Status       string
	TeacherID    *uuid.UUID
	DepartmentID *uuid.UUID
}

func (s *CourseService) List(f ListFilters, offset, limit int) ([]courseModel.CourseModel, int64, error) {
	q := s.DB.Model(&courseModel.CourseModel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.TeacherID != nil {
		q = q.Where("teacher_id = ?", *f.TeacherID)
	}
	if f.DepartmentID != nil {
		q = q.Where("department_id = ?", *f.DepartmentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to list courses")
	}
	var courses []courseModel.CourseModel
	if err := q.Order("start_date DESC").Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to list courses")
	}
	return courses, total, nil
}

func (s *CourseService) Get(id uuid.UUID) (*courseModel.CourseModel, error) {
	var course courseModel.CourseModel
	if err := s.DB.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load course")
	}
	return &course, nil
}

// Create validates the owning teacher and code uniqueness, persists, and
// returns the freshly read-back row.
func (s *CourseService) Create(req *courseDTO.CreateCourseRequest) (*courseModel.CourseModel, error) {
	role, err := helper.ResolveUserRole(s.DB, req.TeacherID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusUnauthorized {
			return nil, fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return nil, err
	}
	if !userModel.IsStaff(role) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Course owner must have the teacher or admin role")
	}

	var cnt int64
	if err := s.DB.Model(&courseModel.CourseModel{}).
		Where("lower(code) = lower(?)", req.Code).Count(&cnt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check course code")
	}
	if cnt > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Course code already in use")
	}

	m := req.ToModel()
	if err := s.DB.Create(m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, fiber.NewError(fiber.StatusConflict, "Course code already in use")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create course")
	}
	return s.Get(m.ID)
}

// Update applies a partial payload. Only the owning teacher or an admin
// may proceed.
func (s *CourseService) Update(actorID, id uuid.UUID, req *courseDTO.UpdateCourseRequest) (*courseModel.CourseModel, error) {
	course, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := helper.EnsureOwnerOrAdmin(s.DB, actorID, course.TeacherID); err != nil {
		return nil, err
	}

	if req.Code != nil && !strings.EqualFold(*req.Code, course.Code) {
		var cnt int64
		if err := s.DB.Model(&courseModel.CourseModel{}).
			Where("lower(code) = lower(?) AND id <> ?", *req.Code, id).Count(&cnt).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check course code")
		}
		if cnt > 0 {
			return nil, fiber.NewError(fiber.StatusConflict, "Course code already in use")
		}
	}

	req.ApplyToModel(course)
	if err := s.DB.Save(course).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update course")
	}
	return course, nil
}

// Delete hard-deletes the row; enrollments cascade at the schema level.
func (s *CourseService) Delete(actorID, id uuid.UUID) error {
	course, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := helper.EnsureOwnerOrAdmin(s.DB, actorID, course.TeacherID); err != nil {
		return err
	}
	if err := s.DB.Unscoped().Delete(&courseModel.CourseModel{}, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete course")
	}
	return nil
}

// Roster returns the active students of a course.
func (s *CourseService) Roster(courseID uuid.UUID) ([]userModel.UserModel, error) {
	if _, err := s.Get(courseID); err != nil {
		return nil, err
	}
	var students []userModel.UserModel
	if err := s.DB.
		Joins("JOIN enrollments ON enrollments.student_id = users.id").
		Where("enrollments.course_id = ? AND enrollments.status = ?", courseID, "active").
		Order("users.full_name ASC").
		Find(&students).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load roster")
	}
	return students, nil
}

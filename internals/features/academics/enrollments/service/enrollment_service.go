package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "schoolhub_backend/internals/features/academics/courses/model"
	enrollModel "schoolhub_backend/internals/features/academics/enrollments/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

// Enroll is idempotent: an already-active pair returns the existing row,
// a dropped pair is reactivated in place, and only a genuinely new pair
// consumes capacity.
func (s *EnrollmentService) Enroll(courseID, studentID uuid.UUID) (*enrollModel.EnrollmentModel, error) {
	role, err := helper.ResolveUserRole(s.DB, studentID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusUnauthorized {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, err
	}
	if role != userModel.RoleStudent {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Only students can be enrolled")
	}

	var course courseModel.CourseModel
	if err := s.DB.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load course")
	}

	var existing enrollModel.EnrollmentModel
	err = s.DB.First(&existing, "course_id = ? AND student_id = ?", courseID, studentID).Error
	switch {
	case err == nil:
		if existing.Status == enrollModel.StatusActive {
			return &existing, nil
		}
		// dropped or completed: reactivate, but re-check capacity first
		if err := s.ensureCapacity(&course); err != nil {
			return nil, err
		}
		existing.Status = enrollModel.StatusActive
		existing.EnrolledAt = time.Now().UTC()
		existing.DroppedAt = nil
		if err := s.DB.Save(&existing).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to reactivate enrollment")
		}
		return &existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to create
	default:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check enrollment")
	}

	if err := s.ensureCapacity(&course); err != nil {
		return nil, err
	}

	enrollment := enrollModel.EnrollmentModel{
		CourseID:   courseID,
		StudentID:  studentID,
		Status:     enrollModel.StatusActive,
		EnrolledAt: time.Now().UTC(),
	}
	if err := s.DB.Create(&enrollment).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to enroll student")
	}
	return &enrollment, nil
}

func (s *EnrollmentService) ensureCapacity(course *courseModel.CourseModel) error {
	var active int64
	if err := s.DB.Model(&enrollModel.EnrollmentModel{}).
		Where("course_id = ? AND status = ?", course.ID, enrollModel.StatusActive).
		Count(&active).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check capacity")
	}
	if active >= int64(course.MaxStudents) {
		return fiber.NewError(fiber.StatusConflict, "Course is full")
	}
	return nil
}

// Unenroll soft-closes the enrollment: status dropped, timestamp kept.
func (s *EnrollmentService) Unenroll(actorID, courseID, studentID uuid.UUID) (*enrollModel.EnrollmentModel, error) {
	if err := helper.EnsureOwnerOrAdmin(s.DB, actorID, studentID); err != nil {
		return nil, err
	}

	var enrollment enrollModel.EnrollmentModel
	if err := s.DB.First(&enrollment, "course_id = ? AND student_id = ?", courseID, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load enrollment")
	}
	if enrollment.Status != enrollModel.StatusActive {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Enrollment is not active")
	}

	now := time.Now().UTC()
	enrollment.Status = enrollModel.StatusDropped
	enrollment.DroppedAt = &now
	if err := s.DB.Save(&enrollment).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to drop enrollment")
	}
	return &enrollment, nil
}

// Complete marks an active enrollment completed; owning teacher or admin.
func (s *EnrollmentService) Complete(actorID, courseID, studentID uuid.UUID) (*enrollModel.EnrollmentModel, error) {
	var course courseModel.CourseModel
	if err := s.DB.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load course")
	}
	if err := helper.EnsureOwnerOrAdmin(s.DB, actorID, course.TeacherID); err != nil {
		return nil, err
	}

	var enrollment enrollModel.EnrollmentModel
	if err := s.DB.First(&enrollment, "course_id = ? AND student_id = ?", courseID, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load enrollment")
	}

	enrollment.Status = enrollModel.StatusCompleted
	if err := s.DB.Save(&enrollment).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to complete enrollment")
	}
	return &enrollment, nil
}

func (s *EnrollmentService) ListByCourse(courseID uuid.UUID) ([]enrollModel.EnrollmentModel, error) {
	var rows []enrollModel.EnrollmentModel
	if err := s.DB.Where("course_id = ?", courseID).Order("enrolled_at ASC").Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list enrollments")
	}
	return rows, nil
}

func (s *EnrollmentService) ListByStudent(studentID uuid.UUID) ([]enrollModel.EnrollmentModel, error) {
	var rows []enrollModel.EnrollmentModel
	if err := s.DB.Where("student_id = ?", studentID).Order("enrolled_at DESC").Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list enrollments")
	}
	return rows, nil
}

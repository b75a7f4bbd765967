package service

import (
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "schoolhub_backend/internals/features/academics/courses/model"
	enrollModel "schoolhub_backend/internals/features/academics/enrollments/model"
	fbModel "schoolhub_backend/internals/features/feedback/model"
	helper "schoolhub_backend/internals/helpers"
)

type FeedbackService struct {
	DB *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{DB: db}
}

func (s *FeedbackService) Get(id uuid.UUID) (*fbModel.FeedbackModel, error) {
	var fb fbModel.FeedbackModel
	if err := s.DB.First(&fb, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Feedback not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load feedback")
	}
	return &fb, nil
}

// Create records the student's one feedback entry for the course. The
// student must hold an active or completed enrollment, and a second
// entry for the same course is rejected.
func (s *FeedbackService) Create(studentID uuid.UUID, courseID uuid.UUID, rating int, comment *string) (*fbModel.FeedbackModel, error) {
	if rating < 1 || rating > 5 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Rating must be between 1 and 5")
	}

	var enrolled int64
	if err := s.DB.Model(&enrollModel.EnrollmentModel{}).
		Where("course_id = ? AND student_id = ? AND status IN ?",
			courseID, studentID, []string{enrollModel.StatusActive, enrollModel.StatusCompleted}).
		Count(&enrolled).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check enrollment")
	}
	if enrolled == 0 {
		return nil, fiber.NewError(fiber.StatusForbidden, "You are not enrolled in this course")
	}

	var existing int64
	if err := s.DB.Model(&fbModel.FeedbackModel{}).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Count(&existing).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check feedback")
	}
	if existing > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "You have already left feedback for this course")
	}

	fb := &fbModel.FeedbackModel{
		StudentID: studentID,
		CourseID:  courseID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.DB.Create(fb).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save feedback")
	}
	return fb, nil
}

// Respond lets the course's teacher (or an admin) answer once. A second
// response is rejected rather than overwriting the first.
func (s *FeedbackService) Respond(actorID, feedbackID uuid.UUID, response string) (*fbModel.FeedbackModel, error) {
	fb, err := s.Get(feedbackID)
	if err != nil {
		return nil, err
	}

	var course courseModel.CourseModel
	if err := s.DB.First(&course, "id = ?", fb.CourseID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load course")
	}
	if err := helper.EnsureOwnerOrAdmin(s.DB, actorID, course.TeacherID); err != nil {
		return nil, err
	}

	if fb.Response != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Feedback has already been responded to")
	}

	now := time.Now().UTC()
	fb.Response = &response
	fb.RespondedBy = &actorID
	fb.RespondedAt = &now
	if err := s.DB.Save(fb).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save response")
	}
	return fb, nil
}

func (s *FeedbackService) ListByCourse(actorID, courseID uuid.UUID) ([]fbModel.FeedbackModel, error) {
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

	var rows []fbModel.FeedbackModel
	if err := s.DB.Where("course_id = ?", courseID).
		Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list feedback")
	}
	return rows, nil
}

func (s *FeedbackService) ListByStudent(studentID uuid.UUID) ([]fbModel.FeedbackModel, error) {
	var rows []fbModel.FeedbackModel
	if err := s.DB.Where("student_id = ?", studentID).
		Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list feedback")
	}
	return rows, nil
}

// CourseSummary aggregates the course's rating. Average is rounded to
// two decimals; zero entries yield a zero average, not an error.
func (s *FeedbackService) CourseSummary(courseID uuid.UUID) (float64, int64, error) {
	var row struct {
		Avg   *float64
		Count int64
	}
	if err := s.DB.Model(&fbModel.FeedbackModel{}).
		Select("AVG(rating) AS avg, COUNT(*) AS count").
		Where("course_id = ?", courseID).
		Scan(&row).Error; err != nil {
		return 0, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to summarize feedback")
	}

	avg := 0.0
	if row.Avg != nil {
		avg = math.Round(*row.Avg*100) / 100
	}
	return avg, row.Count, nil
}

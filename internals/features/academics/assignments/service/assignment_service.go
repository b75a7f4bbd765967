package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	asgModel "schoolhub_backend/internals/features/academics/assignments/model"
	courseModel "schoolhub_backend/internals/features/academics/courses/model"
	enrollModel "schoolhub_backend/internals/features/academics/enrollments/model"
	helper "schoolhub_backend/internals/helpers"
)

type AssignmentService struct {
	DB *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{DB: db}
}

func (s *AssignmentService) Get(id uuid.UUID) (*asgModel.AssignmentModel, error) {
	var assignment asgModel.AssignmentModel
	if err := s.DB.First(&assignment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Assignment not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load assignment")
	}
	return &assignment, nil
}

func (s *AssignmentService) ListByCourse(courseID uuid.UUID) ([]asgModel.AssignmentModel, error) {
	var rows []asgModel.AssignmentModel
	if err := s.DB.Where("course_id = ?", courseID).Order("due_date ASC").Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list assignments")
	}
	return rows, nil
}

// UpcomingForStudent lists not-yet-due assignments of the student's
// active courses.
func (s *AssignmentService) UpcomingForStudent(studentID uuid.UUID) ([]asgModel.AssignmentModel, error) {
	var rows []asgModel.AssignmentModel
	if err := s.DB.
		Joins("JOIN enrollments ON enrollments.course_id = assignments.course_id").
		Where("enrollments.student_id = ? AND enrollments.status = ?", studentID, enrollModel.StatusActive).
		Where("assignments.due_date > now()").
		Order("assignments.due_date ASC").
		Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list assignments")
	}
	return rows, nil
}

func (s *AssignmentService) ownCourse(actorID, courseID uuid.UUID) (*courseModel.CourseModel, error) {
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
	return &course, nil
}

func (s *AssignmentService) Create(actorID uuid.UUID, m *asgModel.AssignmentModel) (*asgModel.AssignmentModel, error) {
	if m.TotalPoints <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "total_points must be positive")
	}
	if _, err := s.ownCourse(actorID, m.CourseID); err != nil {
		return nil, err
	}
	if err := s.DB.Create(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create assignment")
	}
	return s.Get(m.ID)
}

func (s *AssignmentService) Update(actorID, id uuid.UUID, apply func(*asgModel.AssignmentModel)) (*asgModel.AssignmentModel, error) {
	assignment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownCourse(actorID, assignment.CourseID); err != nil {
		return nil, err
	}
	apply(assignment)
	if assignment.TotalPoints <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "total_points must be positive")
	}
	if err := s.DB.Save(assignment).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update assignment")
	}
	return assignment, nil
}

func (s *AssignmentService) Delete(actorID, id uuid.UUID) error {
	assignment, err := s.Get(id)
	if err != nil {
		return err
	}
	if _, err := s.ownCourse(actorID, assignment.CourseID); err != nil {
		return err
	}
	if err := s.DB.Unscoped().Delete(&asgModel.AssignmentModel{}, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	return nil
}

// Submit creates the student's submission, or overwrites the file and
// timestamp of an ungraded one. The late flag is decided once, at first
// submission, and a graded submission can't be resubmitted.
func (s *AssignmentService) Submit(studentID, assignmentID uuid.UUID, fileURL string) (*asgModel.SubmissionModel, error) {
	assignment, err := s.Get(assignmentID)
	if err != nil {
		return nil, err
	}

	var enrolled int64
	if err := s.DB.Model(&enrollModel.EnrollmentModel{}).
		Where("course_id = ? AND student_id = ? AND status = ?",
			assignment.CourseID, studentID, enrollModel.StatusActive).
		Count(&enrolled).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check enrollment")
	}
	if enrolled == 0 {
		return nil, fiber.NewError(fiber.StatusForbidden, "You are not enrolled in this course")
	}

	now := time.Now().UTC()

	var existing asgModel.SubmissionModel
	err = s.DB.First(&existing, "assignment_id = ? AND student_id = ?", assignmentID, studentID).Error
	switch {
	case err == nil:
		if existing.Status == asgModel.SubmissionGraded {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Submission has already been graded")
		}
		existing.FileURL = fileURL
		existing.SubmittedAt = now
		if err := s.DB.Save(&existing).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update submission")
		}
		return &existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first submission
	default:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check submission")
	}

	submission := asgModel.SubmissionModel{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		FileURL:      fileURL,
		SubmittedAt:  now,
		Status:       ResolveSubmissionStatus(now, assignment.DueDate),
	}
	if err := s.DB.Create(&submission).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create submission")
	}
	return &submission, nil
}

// Grade moves the submission to its terminal state. An out-of-range
// grade fails validation and leaves the prior status untouched.
func (s *AssignmentService) Grade(actorID, submissionID uuid.UUID, grade int, feedback *string) (*asgModel.SubmissionModel, error) {
	var submission asgModel.SubmissionModel
	if err := s.DB.First(&submission, "id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Submission not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load submission")
	}

	assignment, err := s.Get(submission.AssignmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownCourse(actorID, assignment.CourseID); err != nil {
		return nil, err
	}
	if err := ValidateGrade(grade, assignment.TotalPoints); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	submission.Status = asgModel.SubmissionGraded
	submission.Grade = &grade
	submission.Feedback = feedback
	submission.GradedBy = &actorID
	submission.GradedAt = &now
	if err := s.DB.Save(&submission).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to grade submission")
	}
	return &submission, nil
}

func (s *AssignmentService) SubmissionsByAssignment(actorID, assignmentID uuid.UUID) ([]asgModel.SubmissionModel, error) {
	assignment, err := s.Get(assignmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownCourse(actorID, assignment.CourseID); err != nil {
		return nil, err
	}
	var rows []asgModel.SubmissionModel
	if err := s.DB.Where("assignment_id = ?", assignmentID).
		Order("submitted_at ASC").Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list submissions")
	}
	return rows, nil
}

package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	asgModel "schoolhub_backend/internals/features/academics/assignments/model"
)

// ResolveSubmissionStatus decides submitted vs late exactly once, at
// creation time. At-or-before the due date counts as on time.
func ResolveSubmissionStatus(submittedAt, dueDate time.Time) string {
	if submittedAt.After(dueDate) {
		return asgModel.SubmissionLate
	}
	return asgModel.SubmissionSubmitted
}

// ValidateGrade enforces 0 ≤ grade ≤ totalPoints.
func ValidateGrade(grade, totalPoints int) error {
	if grade < 0 || grade > totalPoints {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Grade must be between 0 and %d", totalPoints))
	}
	return nil
}

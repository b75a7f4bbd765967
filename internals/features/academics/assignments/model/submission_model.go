package model

import (
	"time"

	"github.com/google/uuid"
)

// Submission lifecycle: submitted|late (picked once at creation) →
// graded (terminal, via the grading operation only).
const (
	SubmissionSubmitted = "submitted"
	SubmissionLate      = "late"
	SubmissionGraded    = "graded"
)

type SubmissionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submissions_assignment_student" json:"assignment_id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submissions_assignment_student" json:"student_id"`
	FileURL      string    `gorm:"type:text;not null" json:"file_url"`
	SubmittedAt  time.Time `gorm:"not null" json:"submitted_at"`
	Status       string    `gorm:"type:varchar(20);not null" json:"status"`

	Grade    *int       `json:"grade,omitempty"`
	Feedback *string    `gorm:"type:text" json:"feedback,omitempty"`
	GradedBy *uuid.UUID `gorm:"type:uuid" json:"graded_by,omitempty"`
	GradedAt *time.Time `json:"graded_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SubmissionModel) TableName() string { return "submissions" }

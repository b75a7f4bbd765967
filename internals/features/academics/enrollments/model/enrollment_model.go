package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "active"
	StatusDropped   = "dropped"
	StatusCompleted = "completed"
)

// EnrollmentModel maps the enrollments table; (course_id, student_id)
// is unique, history is kept by flipping status rather than new rows.
type EnrollmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_course_student" json:"course_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_course_student" json:"student_id"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	EnrolledAt time.Time  `gorm:"not null;autoCreateTime" json:"enrolled_at"`
	DroppedAt  *time.Time `json:"dropped_at,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

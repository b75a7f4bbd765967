package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;not null;uniqueIndex:uq_feedback_student_course" json:"student_id"`
	CourseID  uuid.UUID `gorm:"column:course_id;type:uuid;not null;uniqueIndex:uq_feedback_student_course" json:"course_id"`

	Rating  int     `gorm:"column:rating;not null" json:"rating"`
	Comment *string `gorm:"column:comment;type:text" json:"comment,omitempty"`

	Response    *string    `gorm:"column:response;type:text" json:"response,omitempty"`
	RespondedBy *uuid.UUID `gorm:"column:responded_by;type:uuid" json:"responded_by,omitempty"`
	RespondedAt *time.Time `gorm:"column:responded_at" json:"responded_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (FeedbackModel) TableName() string { return "course_feedback" }

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusUpcoming  = "upcoming"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

type CourseModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string     `gorm:"size:150;not null" json:"name"`
	Code         string     `gorm:"size:40;not null" json:"code"`
	TeacherID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"teacher_id"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index" json:"department_id,omitempty"`
	Description  *string    `gorm:"type:text" json:"description,omitempty"`

	StartDate   time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null" json:"end_date"`
	MaxStudents int       `gorm:"not null;default:30" json:"max_students"`
	Status      string    `gorm:"type:varchar(20);not null;default:'upcoming'" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CourseModel) TableName() string { return "courses" }

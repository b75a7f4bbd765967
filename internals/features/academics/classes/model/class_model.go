package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel is a course's delivery instance: a room, a teacher and a
// seat count. Weekly meeting times live in ClassScheduleModel.
type ClassModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Room      string    `gorm:"size:50;not null" json:"room"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Capacity  int       `gorm:"not null;default:30" json:"capacity"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ClassModel) TableName() string { return "classes" }

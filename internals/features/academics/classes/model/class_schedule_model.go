package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassScheduleModel is one weekly meeting interval. Times are "HH:MM"
// strings; that format sorts lexicographically in chronological order,
// so interval comparisons are plain string comparisons.
type ClassScheduleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClassID   uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	DayOfWeek int       `gorm:"not null" json:"day_of_week"` // 0=Sunday … 6=Saturday
	StartTime string    `gorm:"type:varchar(8);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(8);not null" json:"end_time"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }

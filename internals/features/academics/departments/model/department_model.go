package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string     `gorm:"size:100;unique;not null" json:"name"`
	Code          string     `gorm:"size:20;not null" json:"code"`
	Description   *string    `gorm:"type:text" json:"description,omitempty"`
	HeadTeacherID *uuid.UUID `gorm:"type:uuid" json:"head_teacher_id,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DepartmentModel) TableName() string { return "departments" }

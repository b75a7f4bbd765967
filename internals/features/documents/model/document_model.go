package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type DocumentModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	OwnerID  uuid.UUID `gorm:"column:owner_id;type:uuid;not null;index" json:"owner_id"`
	Title    string    `gorm:"column:title;type:varchar(150);not null" json:"title"`
	Category string    `gorm:"column:category;type:varchar(50);not null" json:"category"`
	FileURL  string    `gorm:"column:file_url;type:text;not null" json:"file_url"`
	FileName string    `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	FileSize int64     `gorm:"column:file_size;not null" json:"file_size"`
	MimeType string    `gorm:"column:mime_type;type:varchar(100);not null" json:"mime_type"`

	Status     string     `gorm:"column:status;type:varchar(20);not null;default:'pending'" json:"status"`
	ReviewedBy *uuid.UUID `gorm:"column:reviewed_by;type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ReviewNote *string    `gorm:"column:review_note;type:text" json:"review_note,omitempty"`

	SharedWith pq.StringArray `gorm:"column:shared_with;type:text[]" json:"shared_with"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (DocumentModel) TableName() string { return "documents" }

// SharedWithUser reports whether the user id appears in the share list.
func (m *DocumentModel) SharedWithUser(userID uuid.UUID) bool {
	id := userID.String()
	for _, s := range m.SharedWith {
		if s == id {
			return true
		}
	}
	return false
}

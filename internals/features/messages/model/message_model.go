package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusSent = "sent"
	StatusRead = "read"
)

type MessageModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	SenderID   uuid.UUID `gorm:"column:sender_id;type:uuid;not null;index" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"column:receiver_id;type:uuid;not null;index" json:"receiver_id"`

	Subject *string `gorm:"column:subject;type:varchar(150)" json:"subject,omitempty"`
	Body    string  `gorm:"column:body;type:text;not null" json:"body"`

	Status string     `gorm:"column:status;type:varchar(10);not null;default:'sent'" json:"status"`
	SentAt time.Time  `gorm:"column:sent_at;not null" json:"sent_at"`
	ReadAt *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (MessageModel) TableName() string { return "messages" }

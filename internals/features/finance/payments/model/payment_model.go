package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
	PaymentOverdue   = "overdue"
)

type PaymentModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	StudentID   uuid.UUID `gorm:"column:student_id;type:uuid;not null;index" json:"student_id"`
	Amount      int64     `gorm:"column:amount;not null" json:"amount"`
	Currency    string    `gorm:"column:currency;type:varchar(10);not null;default:'IDR'" json:"currency"`
	Description string    `gorm:"column:description;type:varchar(255);not null" json:"description"`

	Status   string     `gorm:"column:status;type:varchar(20);not null;default:'pending';index" json:"status"`
	MethodID *uuid.UUID `gorm:"column:method_id;type:uuid" json:"method_id,omitempty"`

	GatewayRef     *string        `gorm:"column:gateway_ref;type:varchar(255)" json:"gateway_ref,omitempty"`
	GatewayPayload datatypes.JSON `gorm:"column:gateway_payload;type:jsonb" json:"gateway_payload,omitempty"`

	PaidAt *time.Time `gorm:"column:paid_at" json:"paid_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (PaymentModel) TableName() string { return "payments" }

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MethodCard         = "card"
	MethodBankTransfer = "bank_transfer"
	MethodEwallet      = "ewallet"
)

type PaymentMethodModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;not null;index" json:"student_id"`
	Type      string    `gorm:"column:type;type:varchar(20);not null" json:"type"`
	Label     string    `gorm:"column:label;type:varchar(100);not null" json:"label"`
	Detail    string    `gorm:"column:detail;type:varchar(100);not null" json:"detail"`
	IsDefault bool      `gorm:"column:is_default;not null;default:false" json:"is_default"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (PaymentMethodModel) TableName() string { return "payment_methods" }

func ValidMethodType(t string) bool {
	switch t {
	case MethodCard, MethodBankTransfer, MethodEwallet:
		return true
	}
	return false
}

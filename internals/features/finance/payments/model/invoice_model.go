package model

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;not null;uniqueIndex:uq_invoices_payment" json:"payment_id"`
	Number    string    `gorm:"column:number;type:varchar(30);not null;uniqueIndex:uq_invoices_number" json:"number"`

	IssuedAt time.Time `gorm:"column:issued_at;not null" json:"issued_at"`
	DueAt    time.Time `gorm:"column:due_at;not null" json:"due_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InvoiceModel) TableName() string { return "invoices" }

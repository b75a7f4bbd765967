package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending = "pending"
	StatusIssued  = "issued"
	StatusRevoked = "revoked"
	StatusExpired = "expired"
)

type CertificateModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;not null;index" json:"student_id"`
	CourseID  uuid.UUID `gorm:"column:course_id;type:uuid;not null;index" json:"course_id"`
	Title     string    `gorm:"column:title;type:varchar(150);not null" json:"title"`

	VerificationCode string `gorm:"column:verification_code;type:varchar(20);not null;uniqueIndex:uq_certificates_code" json:"verification_code"`

	Status     string     `gorm:"column:status;type:varchar(20);not null;default:'pending'" json:"status"`
	IssuedAt   *time.Time `gorm:"column:issued_at" json:"issued_at,omitempty"`
	ExpiryDate *time.Time `gorm:"column:expiry_date" json:"expiry_date,omitempty"`
	PDFURL     *string    `gorm:"column:pdf_url;type:text" json:"pdf_url,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (CertificateModel) TableName() string { return "certificates" }

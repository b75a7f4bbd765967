package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	certModel "schoolhub_backend/internals/features/certificates/model"
)

type IssueCertificateRequest struct {
	StudentID  uuid.UUID  `json:"student_id" validate:"required"`
	CourseID   uuid.UUID  `json:"course_id" validate:"required"`
	Title      string     `json:"title" validate:"required,min=3,max=150"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

func (r *IssueCertificateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

type CertificateResponse struct {
	ID               uuid.UUID  `json:"id"`
	StudentID        uuid.UUID  `json:"student_id"`
	CourseID         uuid.UUID  `json:"course_id"`
	Title            string     `json:"title"`
	VerificationCode string     `json:"verification_code"`
	Status           string     `json:"status"`
	IssuedAt         *time.Time `json:"issued_at,omitempty"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
	PDFURL           *string    `json:"pdf_url,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromModel(m *certModel.CertificateModel) *CertificateResponse {
	return &CertificateResponse{
		ID:               m.ID,
		StudentID:        m.StudentID,
		CourseID:         m.CourseID,
		Title:            m.Title,
		VerificationCode: m.VerificationCode,
		Status:           m.Status,
		IssuedAt:         m.IssuedAt,
		ExpiryDate:       m.ExpiryDate,
		PDFURL:           m.PDFURL,
		CreatedAt:        m.CreatedAt,
	}
}

func FromModels(ms []certModel.CertificateModel) []CertificateResponse {
	out := make([]CertificateResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}

package dto

import (
	"time"

	"github.com/google/uuid"

	docModel "schoolhub_backend/internals/features/documents/model"
)

type ShareDocumentRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

type RejectDocumentRequest struct {
	Note *string `json:"note" validate:"omitempty,max=1000"`
}

type DocumentResponse struct {
	ID         uuid.UUID  `json:"id"`
	OwnerID    uuid.UUID  `json:"owner_id"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	FileURL    string     `json:"file_url"`
	FileName   string     `json:"file_name"`
	FileSize   int64      `json:"file_size"`
	MimeType   string     `json:"mime_type"`
	Status     string     `json:"status"`
	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote *string    `json:"review_note,omitempty"`
	SharedWith []string   `json:"shared_with"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromModel(m *docModel.DocumentModel) *DocumentResponse {
	shared := []string(m.SharedWith)
	if shared == nil {
		shared = []string{}
	}
	return &DocumentResponse{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		Title:      m.Title,
		Category:   m.Category,
		FileURL:    m.FileURL,
		FileName:   m.FileName,
		FileSize:   m.FileSize,
		MimeType:   m.MimeType,
		Status:     m.Status,
		ReviewedBy: m.ReviewedBy,
		ReviewedAt: m.ReviewedAt,
		ReviewNote: m.ReviewNote,
		SharedWith: shared,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func FromModels(ms []docModel.DocumentModel) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}

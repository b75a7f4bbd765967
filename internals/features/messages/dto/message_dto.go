package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	msgModel "schoolhub_backend/internals/features/messages/model"
)

type SendMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`
	Subject    *string   `json:"subject" validate:"omitempty,max=150"`
	Body       string    `json:"body" validate:"required,min=1,max=10000"`
}

func (r *SendMessageRequest) Normalize() {
	if r.Subject != nil {
		s := strings.TrimSpace(*r.Subject)
		if s == "" {
			r.Subject = nil
		} else {
			r.Subject = &s
		}
	}
	r.Body = strings.TrimSpace(r.Body)
}

type MessageResponse struct {
	ID         uuid.UUID  `json:"id"`
	SenderID   uuid.UUID  `json:"sender_id"`
	ReceiverID uuid.UUID  `json:"receiver_id"`
	Subject    *string    `json:"subject,omitempty"`
	Body       string     `json:"body"`
	Status     string     `json:"status"`
	SentAt     time.Time  `json:"sent_at"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
}

func FromModel(m *msgModel.MessageModel) *MessageResponse {
	return &MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Subject:    m.Subject,
		Body:       m.Body,
		Status:     m.Status,
		SentAt:     m.SentAt,
		ReadAt:     m.ReadAt,
	}
}

func FromModels(ms []msgModel.MessageModel) []MessageResponse {
	out := make([]MessageResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}

package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	fbModel "schoolhub_backend/internals/features/feedback/model"
)

type CreateFeedbackRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
	Rating   int       `json:"rating" validate:"required,min=1,max=5"`
	Comment  *string   `json:"comment" validate:"omitempty,max=2000"`
}

func (r *CreateFeedbackRequest) Normalize() {
	if r.Comment != nil {
		c := strings.TrimSpace(*r.Comment)
		r.Comment = &c
	}
}

type RespondFeedbackRequest struct {
	Response string `json:"response" validate:"required,min=2,max=2000"`
}

type FeedbackResponse struct {
	ID          uuid.UUID  `json:"id"`
	StudentID   uuid.UUID  `json:"student_id"`
	CourseID    uuid.UUID  `json:"course_id"`
	Rating      int        `json:"rating"`
	Comment     *string    `json:"comment,omitempty"`
	Response    *string    `json:"response,omitempty"`
	RespondedBy *uuid.UUID `json:"responded_by,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromModel(m *fbModel.FeedbackModel) *FeedbackResponse {
	return &FeedbackResponse{
		ID:          m.ID,
		StudentID:   m.StudentID,
		CourseID:    m.CourseID,
		Rating:      m.Rating,
		Comment:     m.Comment,
		Response:    m.Response,
		RespondedBy: m.RespondedBy,
		RespondedAt: m.RespondedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func FromModels(ms []fbModel.FeedbackModel) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}

type CourseSummaryResponse struct {
	CourseID      uuid.UUID `json:"course_id"`
	AverageRating float64   `json:"average_rating"`
	Count         int64     `json:"count"`
}

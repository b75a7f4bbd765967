package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	asgModel "schoolhub_backend/internals/features/academics/assignments/model"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type CreateAssignmentRequest struct {
	CourseID    uuid.UUID `json:"course_id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=3,max=150"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	TotalPoints int       `json:"total_points" validate:"required,gt=0"`
}

func (r *CreateAssignmentRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
}

func (r *CreateAssignmentRequest) ToModel() *asgModel.AssignmentModel {
	return &asgModel.AssignmentModel{
		CourseID:    r.CourseID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		TotalPoints: r.TotalPoints,
	}
}

type UpdateAssignmentRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=3,max=150"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	DueDate     *time.Time `json:"due_date"`
	TotalPoints *int       `json:"total_points" validate:"omitempty,gt=0"`
}

func (r *UpdateAssignmentRequest) ApplyToModel(m *asgModel.AssignmentModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		m.Description = &d
	}
	if r.DueDate != nil {
		m.DueDate = *r.DueDate
	}
	if r.TotalPoints != nil {
		m.TotalPoints = *r.TotalPoints
	}
}

type GradeSubmissionRequest struct {
	Grade    *int    `json:"grade" validate:"required"`
	Feedback *string `json:"feedback" validate:"omitempty,max=2000"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type AssignmentResponse struct {
	ID          uuid.UUID `json:"id"`
	CourseID    uuid.UUID `json:"course_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	DueDate     time.Time `json:"due_date"`
	TotalPoints int       `json:"total_points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromAssignmentModel(m *asgModel.AssignmentModel) *AssignmentResponse {
	return &AssignmentResponse{
		ID:          m.ID,
		CourseID:    m.CourseID,
		Title:       m.Title,
		Description: m.Description,
		DueDate:     m.DueDate,
		TotalPoints: m.TotalPoints,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromAssignmentModels(ms []asgModel.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromAssignmentModel(&ms[i]))
	}
	return out
}

type SubmissionResponse struct {
	ID           uuid.UUID  `json:"id"`
	AssignmentID uuid.UUID  `json:"assignment_id"`
	StudentID    uuid.UUID  `json:"student_id"`
	FileURL      string     `json:"file_url"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	Status       string     `json:"status"`
	Grade        *int       `json:"grade,omitempty"`
	Feedback     *string    `json:"feedback,omitempty"`
	GradedBy     *uuid.UUID `json:"graded_by,omitempty"`
	GradedAt     *time.Time `json:"graded_at,omitempty"`
}

func FromSubmissionModel(m *asgModel.SubmissionModel) *SubmissionResponse {
	return &SubmissionResponse{
		ID:           m.ID,
		AssignmentID: m.AssignmentID,
		StudentID:    m.StudentID,
		FileURL:      m.FileURL,
		SubmittedAt:  m.SubmittedAt,
		Status:       m.Status,
		Grade:        m.Grade,
		Feedback:     m.Feedback,
		GradedBy:     m.GradedBy,
		GradedAt:     m.GradedAt,
	}
}

func FromSubmissionModels(ms []asgModel.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromSubmissionModel(&ms[i]))
	}
	return out
}

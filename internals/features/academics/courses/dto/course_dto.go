package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	courseModel "schoolhub_backend/internals/features/academics/courses/model"
)

type CreateCourseRequest struct {
	Name         string     `json:"name" validate:"required,min=3,max=150"`
	Code         string     `json:"code" validate:"required,min=2,max=40"`
	TeacherID    uuid.UUID  `json:"teacher_id" validate:"required"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	Description  *string    `json:"description,omitempty"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      time.Time  `json:"end_date" validate:"required,gtfield=StartDate"`
	MaxStudents  int        `json:"max_students" validate:"required,min=1,max=1000"`
	Status       string     `json:"status" validate:"omitempty,oneof=upcoming active completed"`
}

func (r *CreateCourseRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

func (r *CreateCourseRequest) ToModel() *courseModel.CourseModel {
	status := r.Status
	if status == "" {
		status = courseModel.StatusUpcoming
	}
	return &courseModel.CourseModel{
		Name:         r.Name,
		Code:         r.Code,
		TeacherID:    r.TeacherID,
		DepartmentID: r.DepartmentID,
		Description:  r.Description,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		MaxStudents:  r.MaxStudents,
		Status:       status,
	}
}

type UpdateCourseRequest struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=3,max=150"`
	Code         *string    `json:"code,omitempty" validate:"omitempty,min=2,max=40"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	Description  *string    `json:"description,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	MaxStudents  *int       `json:"max_students,omitempty" validate:"omitempty,min=1,max=1000"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,oneof=upcoming active completed"`
}

func (r *UpdateCourseRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Code != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Code))
		r.Code = &v
	}
	if r.Status != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &v
	}
}

func (r *UpdateCourseRequest) ApplyToModel(m *courseModel.CourseModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Code != nil {
		m.Code = *r.Code
	}
	if r.DepartmentID != nil {
		m.DepartmentID = r.DepartmentID
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.StartDate != nil {
		m.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		m.EndDate = *r.EndDate
	}
	if r.MaxStudents != nil {
		m.MaxStudents = *r.MaxStudents
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

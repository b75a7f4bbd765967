package dto

import (
	"strings"

	"github.com/google/uuid"

	deptModel "schoolhub_backend/internals/features/academics/departments/model"
)

type CreateDepartmentRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=100"`
	Code          string     `json:"code" validate:"required,min=1,max=20"`
	Description   *string    `json:"description,omitempty"`
	HeadTeacherID *uuid.UUID `json:"head_teacher_id,omitempty"`
}

func (r *CreateDepartmentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
}

func (r *CreateDepartmentRequest) ToModel() *deptModel.DepartmentModel {
	return &deptModel.DepartmentModel{
		Name:          r.Name,
		Code:          r.Code,
		Description:   r.Description,
		HeadTeacherID: r.HeadTeacherID,
	}
}

type UpdateDepartmentRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Code          *string    `json:"code,omitempty" validate:"omitempty,min=1,max=20"`
	Description   *string    `json:"description,omitempty"`
	HeadTeacherID *uuid.UUID `json:"head_teacher_id,omitempty"`
}

func (r *UpdateDepartmentRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Code != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Code))
		r.Code = &v
	}
}

func (r *UpdateDepartmentRequest) ApplyToModel(m *deptModel.DepartmentModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Code != nil {
		m.Code = *r.Code
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.HeadTeacherID != nil {
		m.HeadTeacherID = r.HeadTeacherID
	}
}

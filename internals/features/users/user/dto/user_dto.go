package dto

import (
	"strings"

	uModel "schoolhub_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest covers register and create-by-admin.
type CreateUserRequest struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=50"`
	FullName string  `json:"full_name" validate:"required,min=3,max=100"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin teacher student parent"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

// ToModel builds a new user. Password is hashed by the caller before Create.
func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	role := r.Role
	if role == "" {
		role = uModel.RoleStudent
	}
	return &uModel.UserModel{
		UserName: r.UserName,
		FullName: r.FullName,
		Email:    r.Email,
		Password: r.Password,
		Role:     role,
		Phone:    r.Phone,
	}
}

// UpdateUserRequest is a partial update; pointers distinguish omitted fields.
type UpdateUserRequest struct {
	UserName *string `json:"user_name,omitempty" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin teacher student parent"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Role != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Role))
		r.Role = &v
	}
}

// ApplyToModel applies only the provided fields. Password must already
// be hashed when set.
func (r *UpdateUserRequest) ApplyToModel(m *uModel.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Password != nil {
		m.Password = *r.Password
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.Phone != nil {
		m.Phone = r.Phone
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID       string  `json:"id"`
	UserName string  `json:"user_name"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Phone    *string `json:"phone,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
	IsActive bool    `json:"is_active"`
}

func FromModel(m *uModel.UserModel) UserResponse {
	return UserResponse{
		ID:       m.ID.String(),
		UserName: m.UserName,
		FullName: m.FullName,
		Email:    m.Email,
		Role:     m.Role,
		Phone:    m.Phone,
		PhotoURL: m.PhotoURL,
		IsActive: m.IsActive,
	}
}

func FromModels(ms []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

package dto

import (
	"strings"

	"github.com/google/uuid"

	classModel "schoolhub_backend/internals/features/academics/classes/model"
)

type ScheduleInput struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type CreateClassRequest struct {
	CourseID  uuid.UUID       `json:"course_id" validate:"required"`
	Name      string          `json:"name" validate:"required,min=2,max=100"`
	Room      string          `json:"room" validate:"required,min=1,max=50"`
	TeacherID uuid.UUID       `json:"teacher_id" validate:"required"`
	Capacity  int             `json:"capacity" validate:"required,min=1,max=1000"`
	Schedules []ScheduleInput `json:"schedules,omitempty" validate:"omitempty,dive"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Room = strings.TrimSpace(r.Room)
	for i := range r.Schedules {
		r.Schedules[i].StartTime = strings.TrimSpace(r.Schedules[i].StartTime)
		r.Schedules[i].EndTime = strings.TrimSpace(r.Schedules[i].EndTime)
	}
}

func (r *CreateClassRequest) ToModels() (*classModel.ClassModel, []classModel.ClassScheduleModel) {
	class := &classModel.ClassModel{
		CourseID:  r.CourseID,
		Name:      r.Name,
		Room:      r.Room,
		TeacherID: r.TeacherID,
		Capacity:  r.Capacity,
	}
	schedules := make([]classModel.ClassScheduleModel, 0, len(r.Schedules))
	for _, sc := range r.Schedules {
		schedules = append(schedules, classModel.ClassScheduleModel{
			DayOfWeek: sc.DayOfWeek,
			StartTime: sc.StartTime,
			EndTime:   sc.EndTime,
		})
	}
	return class, schedules
}

type UpdateClassRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Room     *string `json:"room,omitempty" validate:"omitempty,min=1,max=50"`
	Capacity *int    `json:"capacity,omitempty" validate:"omitempty,min=1,max=1000"`
}

func (r *UpdateClassRequest) ApplyToModel(m *classModel.ClassModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Room != nil {
		m.Room = strings.TrimSpace(*r.Room)
	}
	if r.Capacity != nil {
		m.Capacity = *r.Capacity
	}
}

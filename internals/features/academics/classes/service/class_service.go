package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "schoolhub_backend/internals/features/academics/classes/model"
	courseModel "schoolhub_backend/internals/features/academics/courses/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type ClassService struct {
	DB        *gorm.DB
	Schedules *ScheduleService
}

func NewClassService(db *gorm.DB) *ClassService {
	return &ClassService{DB: db, Schedules: NewScheduleService(db)}
}

func (s *ClassService) Get(id uuid.UUID) (*classModel.ClassModel, error) {
	var class classModel.ClassModel
	if err := s.DB.First(&class, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load class")
	}
	return &class, nil
}

func (s *ClassService) ListByCourse(courseID uuid.UUID) ([]classModel.ClassModel, error) {
	var classes []classModel.ClassModel
	if err := s.DB.Where("course_id = ?", courseID).Order("name ASC").Find(&classes).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list classes")
	}
	return classes, nil
}

// Create checks the course and the teacher, then persists the class with
// its initial schedules inside one transaction so a conflicting interval
// rolls everything back.
func (s *ClassService) Create(class *classModel.ClassModel, schedules []classModel.ClassScheduleModel) (*classModel.ClassModel, error) {
	var course courseModel.CourseModel
	if err := s.DB.First(&course, "id = ?", class.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load course")
	}

	role, err := helper.ResolveUserRole(s.DB, class.TeacherID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusUnauthorized {
			return nil, fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return nil, err
	}
	if !userModel.IsStaff(role) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Class teacher must have the teacher or admin role")
	}

	// intervals in the same request must also not overlap each other;
	// the database check below only sees rows already committed
	for i := range schedules {
		if err := ValidateInterval(schedules[i].DayOfWeek, schedules[i].StartTime, schedules[i].EndTime); err != nil {
			return nil, err
		}
		for j := 0; j < i; j++ {
			if schedules[j].DayOfWeek == schedules[i].DayOfWeek &&
				Overlaps(schedules[j].StartTime, schedules[j].EndTime, schedules[i].StartTime, schedules[i].EndTime) {
				return nil, fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Schedule conflict within request (%s-%s overlaps %s-%s)",
						schedules[i].StartTime, schedules[i].EndTime,
						schedules[j].StartTime, schedules[j].EndTime))
			}
		}
	}
	for i := range schedules {
		if err := s.Schedules.CheckConflict(class.Room, class.TeacherID,
			schedules[i].DayOfWeek, schedules[i].StartTime, schedules[i].EndTime, nil); err != nil {
			return nil, err
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(class).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create class")
		}
		for i := range schedules {
			schedules[i].ClassID = class.ID
			if err := tx.Create(&schedules[i]).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create schedule")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return class, nil
}

// Update applies a partial payload. A room change re-runs the conflict
// check for every existing schedule of the class against the new room.
func (s *ClassService) Update(actorID, classID uuid.UUID, apply func(*classModel.ClassModel)) (*classModel.ClassModel, error) {
	class, err := s.Get(classID)
	if err != nil {
		return nil, err
	}
	if err := helper.EnsureOwnerOrAdmin(s.DB, actorID, class.TeacherID); err != nil {
		return nil, err
	}

	oldRoom := class.Room
	apply(class)

	if class.Room != oldRoom {
		schedules, err := s.ListSchedules(classID)
		if err != nil {
			return nil, err
		}
		for i := range schedules {
			if err := s.Schedules.CheckConflict(class.Room, class.TeacherID,
				schedules[i].DayOfWeek, schedules[i].StartTime, schedules[i].EndTime, &schedules[i].ID); err != nil {
				return nil, err
			}
		}
	}

	if err := s.DB.Save(class).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update class")
	}
	return class, nil
}

// AddSchedule appends a weekly interval after running the conflict check
// against the class's room and teacher.
func (s *ClassService) AddSchedule(actorID, classID uuid.UUID, day int, start, end string) (*classModel.ClassScheduleModel, error) {
	class, err := s.Get(classID)
	if err != nil {
		return nil, err
	}
	if err := helper.EnsureOwnerOrAdmin(s.DB, actorID, class.TeacherID); err != nil {
		return nil, err
	}
	if err := ValidateInterval(day, start, end); err != nil {
		return nil, err
	}
	if err := s.Schedules.CheckConflict(class.Room, class.TeacherID, day, start, end, nil); err != nil {
		return nil, err
	}

	schedule := classModel.ClassScheduleModel{
		ClassID:   classID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.DB.Create(&schedule).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create schedule")
	}
	return &schedule, nil
}

// UpdateSchedule moves an interval; the schedule under update is
// excluded from its own conflict comparison.
func (s *ClassService) UpdateSchedule(actorID, scheduleID uuid.UUID, day int, start, end string) (*classModel.ClassScheduleModel, error) {
	var schedule classModel.ClassScheduleModel
	if err := s.DB.First(&schedule, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Schedule not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load schedule")
	}
	class, err := s.Get(schedule.ClassID)
	if err != nil {
		return nil, err
	}
	if err := helper.EnsureOwnerOrAdmin(s.DB, actorID, class.TeacherID); err != nil {
		return nil, err
	}
	if err := ValidateInterval(day, start, end); err != nil {
		return nil, err
	}
	if err := s.Schedules.CheckConflict(class.Room, class.TeacherID, day, start, end, &scheduleID); err != nil {
		return nil, err
	}

	schedule.DayOfWeek = day
	schedule.StartTime = start
	schedule.EndTime = end
	if err := s.DB.Save(&schedule).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update schedule")
	}
	return &schedule, nil
}

func (s *ClassService) DeleteSchedule(actorID, scheduleID uuid.UUID) error {
	var schedule classModel.ClassScheduleModel
	if err := s.DB.First(&schedule, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Schedule not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load schedule")
	}
	class, err := s.Get(schedule.ClassID)
	if err != nil {
		return err
	}
	if err := helper.EnsureOwnerOrAdmin(s.DB, actorID, class.TeacherID); err != nil {
		return err
	}
	if err := s.DB.Delete(&classModel.ClassScheduleModel{}, "id = ?", scheduleID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	return nil
}

func (s *ClassService) ListSchedules(classID uuid.UUID) ([]classModel.ClassScheduleModel, error) {
	var rows []classModel.ClassScheduleModel
	if err := s.DB.Where("class_id = ?", classID).
		Order("day_of_week ASC, start_time ASC").Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list schedules")
	}
	return rows, nil
}

// Delete removes the class and its schedules.
func (s *ClassService) Delete(actorID, classID uuid.UUID) error {
	class, err := s.Get(classID)
	if err != nil {
		return err
	}
	if err := helper.EnsureOwnerOrAdmin(s.DB, actorID, class.TeacherID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&classModel.ClassScheduleModel{}, "class_id = ?", classID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete schedules")
		}
		if err := tx.Unscoped().Delete(&classModel.ClassModel{}, "id = ?", classID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete class")
		}
		return nil
	})
}

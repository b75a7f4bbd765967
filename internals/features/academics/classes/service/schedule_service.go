package service

import (
	"fmt"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "schoolhub_backend/internals/features/academics/classes/model"
)

var timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

// ValidTimeString accepts HH:MM or HH:MM:SS, 24h clock.
func ValidTimeString(s string) bool {
	return timeRe.MatchString(s)
}

// Overlaps is the half-open [start, end) interval test. Touching
// endpoints (a ends exactly when b starts) do not overlap. Lexicographic
// comparison is correct for the HH:MM[:SS] format.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// ScheduleService owns the room/teacher conflict rule.
type ScheduleService struct {
	DB *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

// conflictQuery loads the intervals to compare against: every schedule
// on the same day whose class sits in the same room or has the same
// teacher, minus the schedule being updated.
func (s *ScheduleService) conflictQuery(room string, teacherID uuid.UUID, day int, excludeID *uuid.UUID) *gorm.DB {
	q := s.DB.Model(&classModel.ClassScheduleModel{}).
		Joins("JOIN classes ON classes.id = class_schedules.class_id").
		Where("class_schedules.day_of_week = ?", day).
		Where("classes.room = ? OR classes.teacher_id = ?", room, teacherID)
	if excludeID != nil {
		q = q.Where("class_schedules.id <> ?", *excludeID)
	}
	return q
}

// CheckConflict returns a 400 naming the clashing schedule when the
// proposed interval overlaps an existing one for the room or teacher.
func (s *ScheduleService) CheckConflict(room string, teacherID uuid.UUID, day int, start, end string, excludeID *uuid.UUID) error {
	var existing []classModel.ClassScheduleModel
	if err := s.conflictQuery(room, teacherID, day, excludeID).
		Select("class_schedules.*").Find(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check schedule conflicts")
	}
	for i := range existing {
		if Overlaps(existing[i].StartTime, existing[i].EndTime, start, end) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Schedule conflict with class %s (%s-%s)",
					existing[i].ClassID, existing[i].StartTime, existing[i].EndTime))
		}
	}
	return nil
}

// Available reports whether a (room|teacher, day, interval) slot is free.
func (s *ScheduleService) Available(room string, teacherID uuid.UUID, day int, start, end string) (bool, error) {
	err := s.CheckConflict(room, teacherID, day, start, end, nil)
	if err == nil {
		return true, nil
	}
	if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusBadRequest {
		return false, nil
	}
	return false, err
}

// ValidateInterval rejects malformed or inverted time strings.
func ValidateInterval(day int, start, end string) error {
	if day < 0 || day > 6 {
		return fiber.NewError(fiber.StatusBadRequest, "day_of_week must be 0-6")
	}
	if !ValidTimeString(start) || !ValidTimeString(end) {
		return fiber.NewError(fiber.StatusBadRequest, "Times must be HH:MM in 24h format")
	}
	if start >= end {
		return fiber.NewError(fiber.StatusBadRequest, "start_time must be before end_time")
	}
	return nil
}

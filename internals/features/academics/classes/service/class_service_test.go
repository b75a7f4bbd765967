package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	classModel "schoolhub_backend/internals/features/academics/classes/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db, mock
}

func TestCreateRejectsOverlappingSiblingSchedules(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewClassService(db)

	courseID, teacherID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "teacher_id", "max_students", "status"}).
			AddRow(courseID.String(), "Algebra", "MATH101", teacherID.String(), 30, "active"))
	mock.ExpectQuery(`SELECT "id","role" FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).AddRow(teacherID.String(), userModel.RoleTeacher))

	class := &classModel.ClassModel{
		CourseID:  courseID,
		TeacherID: teacherID,
		Name:      "Section A",
		Room:      "R-101",
		Capacity:  30,
	}
	// same day, 09:30-10:30 starts inside 09:00-10:00; neither interval
	// exists in storage yet, so the two must be caught against each other
	schedules := []classModel.ClassScheduleModel{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: 1, StartTime: "09:30", EndTime: "10:30"},
	}

	_, err := svc.Create(class, schedules)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "Schedule conflict within request")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAllowsTouchingSiblingSchedules(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewClassService(db)

	courseID, teacherID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "teacher_id", "max_students", "status"}).
			AddRow(courseID.String(), "Algebra", "MATH101", teacherID.String(), 30, "active"))
	mock.ExpectQuery(`SELECT "id","role" FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).AddRow(teacherID.String(), userModel.RoleTeacher))

	// one interval ends exactly when the next starts: no overlap under
	// the half-open rule, so both reach the stored-schedule check
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`SELECT class_schedules\.\* FROM "class_schedules"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "class_id", "day_of_week", "start_time", "end_time"}))
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectQuery(`INSERT INTO "class_schedules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectQuery(`INSERT INTO "class_schedules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	class := &classModel.ClassModel{
		CourseID:  courseID,
		TeacherID: teacherID,
		Name:      "Section A",
		Room:      "R-101",
		Capacity:  30,
	}
	schedules := []classModel.ClassScheduleModel{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00"},
	}

	_, err := svc.Create(class, schedules)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

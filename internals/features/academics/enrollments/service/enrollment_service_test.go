package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	enrollModel "schoolhub_backend/internals/features/academics/enrollments/model"
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

func expectStudentLookup(mock sqlmock.Sqlmock, studentID uuid.UUID, role string) {
	mock.ExpectQuery(`SELECT "id","role" FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).AddRow(studentID.String(), role))
}

func expectCourseLookup(mock sqlmock.Sqlmock, courseID, teacherID uuid.UUID, maxStudents int) {
	mock.ExpectQuery(`SELECT \* FROM "courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "teacher_id", "max_students", "status"}).
			AddRow(courseID.String(), "Algebra", "MATH101", teacherID.String(), maxStudents, "active"))
}

func TestEnrollRejectsFullCourse(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnrollmentService(db)

	courseID, studentID := uuid.New(), uuid.New()

	expectStudentLookup(mock, studentID, userModel.RoleStudent)
	expectCourseLookup(mock, courseID, uuid.New(), 2)

	// no existing pair
	mock.ExpectQuery(`SELECT \* FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// active count already at capacity
	mock.ExpectQuery(`SELECT count\(\*\) FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	_, err := svc.Enroll(courseID, studentID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Equal(t, "Course is full", fe.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollIsIdempotentForActivePair(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnrollmentService(db)

	courseID, studentID := uuid.New(), uuid.New()
	existingID := uuid.New()

	expectStudentLookup(mock, studentID, userModel.RoleStudent)
	expectCourseLookup(mock, courseID, uuid.New(), 30)

	mock.ExpectQuery(`SELECT \* FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "student_id", "status", "enrolled_at"}).
			AddRow(existingID.String(), courseID.String(), studentID.String(), enrollModel.StatusActive, time.Now()))

	// no capacity check, no insert: the existing row is returned as-is
	enrollment, err := svc.Enroll(courseID, studentID)
	require.NoError(t, err)
	assert.Equal(t, existingID, enrollment.ID)
	assert.Equal(t, enrollModel.StatusActive, enrollment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollReactivatesDroppedPair(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnrollmentService(db)

	courseID, studentID := uuid.New(), uuid.New()
	existingID := uuid.New()
	droppedAt := time.Now().Add(-24 * time.Hour)

	expectStudentLookup(mock, studentID, userModel.RoleStudent)
	expectCourseLookup(mock, courseID, uuid.New(), 30)

	mock.ExpectQuery(`SELECT \* FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "student_id", "status", "enrolled_at", "dropped_at"}).
			AddRow(existingID.String(), courseID.String(), studentID.String(), enrollModel.StatusDropped, time.Now().Add(-48*time.Hour), droppedAt))

	// capacity is re-checked before the row comes back to life
	mock.ExpectQuery(`SELECT count\(\*\) FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "enrollments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	enrollment, err := svc.Enroll(courseID, studentID)
	require.NoError(t, err)
	assert.Equal(t, existingID, enrollment.ID)
	assert.Equal(t, enrollModel.StatusActive, enrollment.Status)
	assert.Nil(t, enrollment.DroppedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollReactivationRespectsCapacity(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnrollmentService(db)

	courseID, studentID := uuid.New(), uuid.New()
	droppedAt := time.Now().Add(-24 * time.Hour)

	expectStudentLookup(mock, studentID, userModel.RoleStudent)
	expectCourseLookup(mock, courseID, uuid.New(), 2)

	mock.ExpectQuery(`SELECT \* FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "student_id", "status", "enrolled_at", "dropped_at"}).
			AddRow(uuid.New().String(), courseID.String(), studentID.String(), enrollModel.StatusDropped, time.Now().Add(-48*time.Hour), droppedAt))

	// the seat freed by dropping was taken by someone else
	mock.ExpectQuery(`SELECT count\(\*\) FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	_, err := svc.Enroll(courseID, studentID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Equal(t, "Course is full", fe.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollRejectsNonStudents(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnrollmentService(db)

	teacherID := uuid.New()
	expectStudentLookup(mock, teacherID, userModel.RoleTeacher)

	_, err := svc.Enroll(uuid.New(), teacherID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

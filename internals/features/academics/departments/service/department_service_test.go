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

	deptModel "schoolhub_backend/internals/features/academics/departments/model"
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

func TestDeleteDetachesCoursesInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewDepartmentService(db)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "courses"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "departments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUnknownDepartmentRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewDepartmentService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "courses"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "departments"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.Delete(uuid.New())
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsNonStaffHeadTeacher(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewDepartmentService(db)

	headID := uuid.New()
	mock.ExpectQuery(`SELECT "id","role" FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).AddRow(headID.String(), userModel.RoleStudent))

	_, err := svc.Create(&deptModel.DepartmentModel{
		Name:          "Mathematics",
		Code:          "MATH",
		HeadTeacherID: &headID,
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Head teacher must have the teacher or admin role", fe.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

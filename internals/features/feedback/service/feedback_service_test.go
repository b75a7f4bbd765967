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

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewFeedbackService(db)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.Create(uuid.New(), uuid.New(), rating, nil)
		require.Error(t, err, "rating %d", rating)
		assert.Equal(t, fiber.StatusBadRequest, err.(*fiber.Error).Code)
	}
}

func TestCreateRejectsDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFeedbackService(db)

	// enrolled
	mock.ExpectQuery(`SELECT count\(\*\) FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	// already has feedback for the pair
	mock.ExpectQuery(`SELECT count\(\*\) FROM "course_feedback"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.Create(uuid.New(), uuid.New(), 4, nil)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, err.(*fiber.Error).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequiresEnrollment(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFeedbackService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := svc.Create(uuid.New(), uuid.New(), 4, nil)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.(*fiber.Error).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	docModel "schoolhub_backend/internals/features/documents/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
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

func TestListDegradesOnDatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewDocumentService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "documents"`).
		WillReturnError(errors.New("connection refused"))

	actorID := uuid.New()
	rows, pagination, note, err := svc.List(actorID, userModel.RoleStudent, helper.Paging{Page: 1, PerPage: 20, Limit: 20})
	require.NoError(t, err, "a degraded read must not surface the DB error")

	assert.Equal(t, DegradedNote, note)
	assert.Nil(t, pagination)
	require.NotEmpty(t, rows)
	for _, d := range rows {
		assert.Equal(t, actorID, d.OwnerID)
		assert.Equal(t, uuid.Nil, d.ID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCanRead(t *testing.T) {
	owner := uuid.New()
	shared := uuid.New()
	stranger := uuid.New()

	doc := &docModel.DocumentModel{
		OwnerID:    owner,
		SharedWith: []string{shared.String()},
	}

	assert.True(t, CanRead(doc, owner, userModel.RoleStudent), "owner")
	assert.True(t, CanRead(doc, shared, userModel.RoleStudent), "on the share list")
	assert.True(t, CanRead(doc, stranger, userModel.RoleAdmin), "admin")
	assert.False(t, CanRead(doc, stranger, userModel.RoleStudent), "stranger")
	assert.False(t, CanRead(doc, stranger, userModel.RoleTeacher), "teacher without share")
}

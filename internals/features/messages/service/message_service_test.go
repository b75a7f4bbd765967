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

	msgModel "schoolhub_backend/internals/features/messages/model"
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

func TestSendRejectsSelfMessage(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewMessageService(db)

	id := uuid.New()
	_, err := svc.Send(id, id, nil, "hello me")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, err.(*fiber.Error).Code)
}

func TestMarkReadIsReceiverOnly(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMessageService(db)

	messageID := uuid.New()
	receiverID := uuid.New()
	senderID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "body", "status", "sent_at"}).
			AddRow(messageID.String(), senderID.String(), receiverID.String(), "hi", msgModel.StatusSent, time.Now()))

	_, err := svc.MarkRead(senderID, messageID)
	require.Error(t, err, "the sender cannot mark their own message read")
	assert.Equal(t, fiber.StatusForbidden, err.(*fiber.Error).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkReadIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMessageService(db)

	messageID := uuid.New()
	receiverID := uuid.New()
	readAt := time.Now().Add(-time.Hour)

	mock.ExpectQuery(`SELECT \* FROM "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "body", "status", "sent_at", "read_at"}).
			AddRow(messageID.String(), uuid.New().String(), receiverID.String(), "hi", msgModel.StatusRead, time.Now().Add(-2*time.Hour), readAt))

	// already read: no UPDATE expected
	msg, err := svc.MarkRead(receiverID, messageID)
	require.NoError(t, err)
	assert.Equal(t, msgModel.StatusRead, msg.Status)
	require.NotNil(t, msg.ReadAt)
	assert.WithinDuration(t, readAt, *msg.ReadAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	msgModel "schoolhub_backend/internals/features/messages/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type MessageService struct {
	DB *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{DB: db}
}

func (s *MessageService) Send(senderID, receiverID uuid.UUID, subject *string, body string) (*msgModel.MessageModel, error) {
	if senderID == receiverID {
		return nil, fiber.NewError(fiber.StatusBadRequest, "You cannot message yourself")
	}

	var count int64
	if err := s.DB.Model(&userModel.UserModel{}).Where("id = ?", receiverID).Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check receiver")
	}
	if count == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Receiver not found")
	}

	msg := &msgModel.MessageModel{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Subject:    subject,
		Body:       body,
		Status:     msgModel.StatusSent,
		SentAt:     time.Now().UTC(),
	}
	if err := s.DB.Create(msg).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to send message")
	}
	return msg, nil
}

func (s *MessageService) Inbox(userID uuid.UUID, paging helper.Paging) ([]msgModel.MessageModel, *helper.Pagination, error) {
	return s.listWhere("receiver_id = ?", userID, paging)
}

func (s *MessageService) Sent(userID uuid.UUID, paging helper.Paging) ([]msgModel.MessageModel, *helper.Pagination, error) {
	return s.listWhere("sender_id = ?", userID, paging)
}

func (s *MessageService) listWhere(cond string, userID uuid.UUID, paging helper.Paging) ([]msgModel.MessageModel, *helper.Pagination, error) {
	q := s.DB.Model(&msgModel.MessageModel{}).Where(cond, userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list messages")
	}

	var rows []msgModel.MessageModel
	if err := q.Order("sent_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list messages")
	}
	return rows, helper.BuildPagination(total, paging.Page, paging.PerPage), nil
}

// MarkRead stamps the message read. Only the receiver may do it, and a
// second call is a no-op.
func (s *MessageService) MarkRead(actorID, messageID uuid.UUID) (*msgModel.MessageModel, error) {
	var msg msgModel.MessageModel
	if err := s.DB.First(&msg, "id = ?", messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Message not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load message")
	}
	if msg.ReceiverID != actorID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Only the receiver can mark a message read")
	}
	if msg.Status == msgModel.StatusRead {
		return &msg, nil
	}

	now := time.Now().UTC()
	msg.Status = msgModel.StatusRead
	msg.ReadAt = &now
	if err := s.DB.Save(&msg).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update message")
	}
	return &msg, nil
}

func (s *MessageService) UnreadCount(userID uuid.UUID) (int64, error) {
	var count int64
	if err := s.DB.Model(&msgModel.MessageModel{}).
		Where("receiver_id = ? AND status = ?", userID, msgModel.StatusSent).
		Count(&count).Error; err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to count messages")
	}
	return count, nil
}

// Conversation returns both directions of the thread between the actor
// and the other user, oldest first.
func (s *MessageService) Conversation(actorID, otherID uuid.UUID, paging helper.Paging) ([]msgModel.MessageModel, *helper.Pagination, error) {
	q := s.DB.Model(&msgModel.MessageModel{}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			actorID, otherID, otherID, actorID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load conversation")
	}

	var rows []msgModel.MessageModel
	if err := q.Order("sent_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load conversation")
	}
	return rows, helper.BuildPagination(total, paging.Page, paging.PerPage), nil
}

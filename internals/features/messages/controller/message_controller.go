package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/messages/dto"
	"schoolhub_backend/internals/features/messages/service"
	helper "schoolhub_backend/internals/helpers"
)

type MessageController struct {
	Service  *service.MessageService
	Validate *validator.Validate
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{
		Service:  service.NewMessageService(db),
		Validate: validator.New(),
	}
}

// POST /api/messages
func (ctl *MessageController) Send(c *fiber.Ctx) error {
	senderID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	msg, err := ctl.Service.Send(senderID, req.ReceiverID, req.Subject, req.Body)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Message sent", dto.FromModel(msg))
}

// GET /api/messages/inbox
func (ctl *MessageController) Inbox(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	rows, pagination, err := ctl.Service.Inbox(actorID, helper.ResolvePaging(c, 20, 100))
	if err != nil {
		return err
	}
	return helper.JsonList(c, "messages", dto.FromModels(rows), pagination, "")
}

// GET /api/messages/sent
func (ctl *MessageController) Sent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	rows, pagination, err := ctl.Service.Sent(actorID, helper.ResolvePaging(c, 20, 100))
	if err != nil {
		return err
	}
	return helper.JsonList(c, "messages", dto.FromModels(rows), pagination, "")
}

// PUT /api/messages/:id/read
func (ctl *MessageController) MarkRead(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid message id")
	}
	msg, err := ctl.Service.MarkRead(actorID, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromModel(msg))
}

// GET /api/messages/unread-count
func (ctl *MessageController) UnreadCount(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	count, err := ctl.Service.UnreadCount(actorID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", fiber.Map{"unread_count": count})
}

// GET /api/messages/conversation/:userId
func (ctl *MessageController) Conversation(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}
	rows, pagination, err := ctl.Service.Conversation(actorID, otherID, helper.ResolvePaging(c, 50, 200))
	if err != nil {
		return err
	}
	return helper.JsonList(c, "messages", dto.FromModels(rows), pagination, "")
}

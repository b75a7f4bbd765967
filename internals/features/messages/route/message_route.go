package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/messages/controller"
)

func MessageRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewMessageController(db)

	messages := r.Group("/messages")
	messages.Post("/", ctl.Send)
	messages.Get("/inbox", ctl.Inbox)
	messages.Get("/sent", ctl.Sent)
	messages.Get("/unread-count", ctl.UnreadCount)
	messages.Get("/conversation/:userId", ctl.Conversation)
	messages.Put("/:id/read", ctl.MarkRead)
}

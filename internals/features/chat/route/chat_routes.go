package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentorhub_backend/internals/features/chat/controller"
)

func ChatRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChatController(db)

	chat := api.Group("/chat")
	chat.Get("/groups", ctrl.ListGroups)
	chat.Post("/groups", ctrl.CreateGroup)
	chat.Post("/groups/:id/join", ctrl.JoinGroup)
	chat.Get("/groups/:id/messages", ctrl.ListGroupMessages)
	chat.Post("/messages", ctrl.SendMessage)
	chat.Get("/direct/:userId", ctrl.ListDirectMessages)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentorhub_backend/internals/features/notifications/controller"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notifs := api.Group("/notifications")
	notifs.Get("/", ctrl.ListOwn)
	notifs.Get("/unread-count", ctrl.UnreadCount)
	notifs.Post("/:id/read", ctrl.MarkAsRead)
}

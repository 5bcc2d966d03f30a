package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentorhub_backend/internals/constants"
	"mentorhub_backend/internals/features/announcements/controller"
	authMw "mentorhub_backend/internals/middlewares/auth"
)

func AnnouncementRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)

	api.Get("/announcements", ctrl.ListForRole)
	api.Post("/a/announcements",
		authMw.OnlyRoles(constants.RoleErrorAdmin("announcements"), constants.AdminOnly...),
		ctrl.CreateAnnouncement)
}

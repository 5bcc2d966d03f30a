package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementRoute "mentorhub_backend/internals/features/announcements/route"
	chatRoute "mentorhub_backend/internals/features/chat/route"
	notificationRoute "mentorhub_backend/internals/features/notifications/route"
	ratingRoute "mentorhub_backend/internals/features/ratings/route"
	resourceRoute "mentorhub_backend/internals/features/resources/route"
	salesRoute "mentorhub_backend/internals/features/sales/route"
	sessionRoute "mentorhub_backend/internals/features/sessions/route"
	userRoute "mentorhub_backend/internals/features/users/route"
	authMw "mentorhub_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 🔓 Public: register & login
	userRoute.PublicAuthRoutes(api, db)

	// 🔒 Everything else requires a valid access token
	protected := api.Group("", authMw.AuthMiddleware())
	userRoute.UserRoutes(protected, db)
	sessionRoute.SessionRoutes(protected, db)
	announcementRoute.AnnouncementRoutes(protected, db)
	resourceRoute.ResourceRoutes(protected, db)
	chatRoute.ChatRoutes(protected, db)
	ratingRoute.RatingRoutes(protected, db)
	salesRoute.SalesRoutes(protected, db)
	notificationRoute.NotificationRoutes(protected, db)
}

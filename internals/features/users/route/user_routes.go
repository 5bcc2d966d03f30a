package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentorhub_backend/internals/constants"
	"mentorhub_backend/internals/features/users/controller"
	authMw "mentorhub_backend/internals/middlewares/auth"
	"mentorhub_backend/internals/middlewares"
)

// PublicAuthRoutes: register/login with their own rate limiters.
func PublicAuthRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
}

// UserRoutes: everything behind the auth middleware.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	users := api.Group("/users")
	users.Get("/me", userCtrl.Me)
	users.Post("/avatar", userCtrl.UploadAvatar)

	admin := api.Group("/a/users",
		authMw.OnlyRoles(constants.RoleErrorAdmin("user management"), constants.AdminOnly...))
	admin.Get("/", userCtrl.ListUsers)
	admin.Post("/:id/approve", userCtrl.ApproveMentor)
}

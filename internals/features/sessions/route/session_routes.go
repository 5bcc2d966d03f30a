package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentorhub_backend/internals/constants"
	"mentorhub_backend/internals/features/sessions/controller"
	authMw "mentorhub_backend/internals/middlewares/auth"
)

func SessionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSessionController(db)

	sessions := api.Group("/sessions")
	sessions.Get("/", ctrl.ListSessions)
	sessions.Get("/mentors/:id/summary", ctrl.MentorSummary)
	sessions.Post("/",
		authMw.OnlyRoles(constants.RoleErrorMentor("session scheduling"), constants.MentorAndAbove...),
		ctrl.CreateSession)
	sessions.Post("/:id/enroll",
		authMw.OnlyRoles(constants.RoleErrorMentee("session enrollment"), constants.MenteeOnly...),
		ctrl.Enroll)
	sessions.Post("/:id/complete",
		authMw.OnlyRoles(constants.RoleErrorMentor("session completion"), constants.MentorAndAbove...),
		ctrl.CompleteSession)
}

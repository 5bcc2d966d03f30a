package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentorhub_backend/internals/constants"
	"mentorhub_backend/internals/features/ratings/controller"
	authMw "mentorhub_backend/internals/middlewares/auth"
)

func RatingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRatingController(db)

	ratings := api.Group("/ratings")
	ratings.Get("/mentors/:id", ctrl.MentorRatings)
	ratings.Post("/",
		authMw.OnlyRoles(constants.RoleErrorMentee("mentor rating"), constants.MenteeOnly...),
		ctrl.CreateRating)
}

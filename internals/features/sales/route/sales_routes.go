package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentorhub_backend/internals/constants"
	"mentorhub_backend/internals/features/sales/controller"
	authMw "mentorhub_backend/internals/middlewares/auth"
)

func SalesRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSalesController(db)

	sales := api.Group("/sales",
		authMw.OnlyRoles(constants.RoleErrorMentee("sales analytics"), constants.MenteeOnly...))
	sales.Post("/", ctrl.CreateEntry)
	sales.Get("/", ctrl.ListOwn)
	sales.Get("/summary", ctrl.MonthlySummary)
}

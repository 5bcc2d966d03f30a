package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentorhub_backend/internals/features/resources/controller"
)

func ResourceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResourceController(db)

	resources := api.Group("/resources")
	resources.Post("/", ctrl.CreateResource)
	resources.Get("/", ctrl.ListResources)
	resources.Delete("/:id", ctrl.DeleteResource)
}

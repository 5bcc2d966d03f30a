package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mentorhub_backend/internals/constants"
	"mentorhub_backend/internals/features/resources/dto"
	"mentorhub_backend/internals/features/resources/model"
	helper "mentorhub_backend/internals/helpers"
)

type ResourceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewResourceController(db *gorm.DB) *ResourceController {
	return &ResourceController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/resources — register an uploaded file's metadata
func (ctrl *ResourceController) CreateResource(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var req dto.ResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	newRes := req.ToModel(userID)
	if err := ctrl.DB.Create(newRes).Error; err != nil {
		log.Printf("[ERROR] create resource: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save resource")
	}
	return helper.JsonCreated(c, "Resource shared", dto.ToResourceResponse(newRes))
}

// 🟢 GET /api/resources?tag=&page=&per_page=
func (ctrl *ResourceController) ListResources(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ResourceModel{})
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("? = ANY(resource_tags)", tag)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count resources")
	}

	var resources []model.ResourceModel
	if err := q.Order("resource_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&resources).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch resources")
	}

	return helper.JsonList(c, "ok", dto.ToResourceResponseList(resources),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🛑 DELETE /api/resources/:id — uploader or admin only
func (ctrl *ResourceController) DeleteResource(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}
	role, _ := c.Locals("userRole").(string)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resource id")
	}

	var res model.ResourceModel
	if err := ctrl.DB.First(&res, "resource_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
	}
	if res.ResourceUploadedBy != userID && role != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Not allowed to delete this resource")
	}

	if err := ctrl.DB.Delete(&res).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete resource")
	}
	return helper.JsonDeleted(c, "Resource deleted", nil)
}

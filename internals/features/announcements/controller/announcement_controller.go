package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mentorhub_backend/internals/constants"
	"mentorhub_backend/internals/features/announcements/dto"
	"mentorhub_backend/internals/features/announcements/model"
	helper "mentorhub_backend/internals/helpers"
)

type AnnouncementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/a/announcements
func (ctrl *AnnouncementController) CreateAnnouncement(c *fiber.Ctx) error {
	adminID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	newAnn := req.ToModel(adminID)
	if err := ctrl.DB.Create(newAnn).Error; err != nil {
		log.Printf("[ERROR] create announcement: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.JsonCreated(c, "Announcement published", dto.ToAnnouncementResponse(newAnn))
}

// 🟢 GET /api/announcements — announcements targeted at the caller's role
func (ctrl *AnnouncementController) ListForRole(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.AnnouncementModel{}).
		Where("announcement_target_role IN ?", []string{constants.TargetAllRoles, role})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count announcements")
	}

	var anns []model.AnnouncementModel
	if err := q.Order("announcement_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&anns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}

	return helper.JsonList(c, "ok", dto.ToAnnouncementResponseList(anns),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

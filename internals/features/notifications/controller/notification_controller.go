package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mentorhub_backend/internals/features/notifications/dto"
	"mentorhub_backend/internals/features/notifications/model"
	helper "mentorhub_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/notifications — caller's notifications, newest first
func (ctrl *NotificationController) ListOwn(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var notifs []model.NotificationModel
	if err := ctrl.DB.Where("notification_user_id = ?", userID).
		Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	return helper.JsonList(c, "ok", dto.ToNotificationResponseList(notifs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 POST /api/notifications/:id/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Update("notification_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonUpdated(c, "Notification marked as read", nil)
}

// 🟢 GET /api/notifications/unread-count
func (ctrl *NotificationController) UnreadCount(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var count int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = FALSE", userID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"unread": count})
}

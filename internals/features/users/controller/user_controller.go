package controller

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mentorhub_backend/internals/constants"
	"mentorhub_backend/internals/features/users/dto"
	"mentorhub_backend/internals/features/users/model"
	helper "mentorhub_backend/internals/helpers"
)

const avatarDir = "uploads/avatars"

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 GET /api/users/me
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(&user))
}

// 🟢 GET /api/a/users?role=&page=&per_page=
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonList(c, "ok", dto.ToUserResponseList(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 POST /api/a/users/:id/approve — activate a pending mentor
func (ctrl *UserController) ApproveMentor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if user.Role != constants.RoleMentor {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only mentor accounts need approval")
	}

	updates := map[string]any{"status": constants.StatusActive, "verified": true}
	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] approve mentor: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve mentor")
	}
	return helper.JsonUpdated(c, "Mentor approved", dto.ToUserResponse(&user))
}

// 🟢 POST /api/users/avatar (multipart field "avatar")
func (ctrl *UserController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing avatar file")
	}

	normalized, err := helper.NormalizeImage(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := os.MkdirAll(avatarDir, 0o755); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to prepare storage")
	}
	fileName := fmt.Sprintf("%s.webp", uuid.New())
	if err := os.WriteFile(filepath.Join(avatarDir, fileName), normalized, 0o644); err != nil {
		log.Printf("[ERROR] write avatar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store avatar")
	}

	url := "/" + avatarDir + "/" + fileName
	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save avatar URL")
	}

	return helper.JsonUpdated(c, "Avatar updated", fiber.Map{"avatar_url": url})
}

package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mentorhub_backend/internals/features/chat/dto"
	"mentorhub_backend/internals/features/chat/model"
	helper "mentorhub_backend/internals/helpers"
)

type ChatController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/chat/groups
func (ctrl *ChatController) CreateGroup(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var req dto.GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	group := model.ChatGroupModel{
		ChatGroupName:      req.Name,
		ChatGroupCreatedBy: &userID,
	}
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		// the creator joins their own group immediately
		member := model.GroupMemberModel{GroupID: group.ChatGroupID, UserID: userID}
		return tx.Create(&member).Error
	})
	if err != nil {
		log.Printf("[ERROR] create group: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create group")
	}

	return helper.JsonCreated(c, "Group created", dto.ToGroupResponse(&group))
}

// 🟢 GET /api/chat/groups
func (ctrl *ChatController) ListGroups(c *fiber.Ctx) error {
	var groups []model.ChatGroupModel
	if err := ctrl.DB.Order("chat_group_is_general DESC, chat_group_created_at ASC").
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch groups")
	}
	return helper.JsonOK(c, "ok", dto.ToGroupResponseList(groups))
}

// 🟢 POST /api/chat/groups/:id/join
func (ctrl *ChatController) JoinGroup(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var group model.ChatGroupModel
	if err := ctrl.DB.First(&group, "chat_group_id = ?", groupID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
	}

	var existing model.GroupMemberModel
	err = ctrl.DB.Where("group_id = ? AND user_id = ?", groupID, userID).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Already a member")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check membership")
	}

	member := model.GroupMemberModel{GroupID: groupID, UserID: userID}
	if err := ctrl.DB.Create(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to join group")
	}
	return helper.JsonCreated(c, "Joined group", member)
}

// 🟢 POST /api/chat/messages — group broadcast or direct message
func (ctrl *ChatController) SendMessage(c *fiber.Ctx) error {
	senderID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var req dto.MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	msg := req.ToModel(senderID)
	if err := msg.ValidateTarget(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if msg.MessageGroupID != nil {
		// sender must be a member of the target group
		var member model.GroupMemberModel
		if err := ctrl.DB.Where("group_id = ? AND user_id = ?", msg.MessageGroupID, senderID).
			First(&member).Error; err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Not a member of this group")
		}
	}

	if err := ctrl.DB.Create(msg).Error; err != nil {
		log.Printf("[ERROR] send message: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send message")
	}
	return helper.JsonCreated(c, "Message sent", dto.ToMessageResponse(msg))
}

// 🟢 GET /api/chat/groups/:id/messages
func (ctrl *ChatController) ListGroupMessages(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctrl.DB.Model(&model.MessageModel{}).
		Where("message_group_id = ?", groupID).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	var msgs []model.MessageModel
	if err := ctrl.DB.Where("message_group_id = ?", groupID).
		Order("message_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&msgs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}

	return helper.JsonList(c, "ok", dto.ToMessageResponseList(msgs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/chat/direct/:userId — conversation between caller and one user
func (ctrl *ChatController) ListDirectMessages(c *fiber.Ctx) error {
	callerID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}
	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.MessageModel{}).
		Where("(message_sender_id = ? AND message_receiver_id = ?) OR (message_sender_id = ? AND message_receiver_id = ?)",
			callerID, otherID, otherID, callerID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	var msgs []model.MessageModel
	if err := q.Order("message_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&msgs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}

	return helper.JsonList(c, "ok", dto.ToMessageResponseList(msgs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

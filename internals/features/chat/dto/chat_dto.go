package dto

import (
	"time"

	"github.com/google/uuid"

	"mentorhub_backend/internals/features/chat/model"
)

// ================== REQUEST ==================
type GroupRequest struct {
	Name string `json:"name" validate:"required,min=2,max=150"`
}

// Exactly one of GroupID / ReceiverID must be set (group vs direct message).
type MessageRequest struct {
	Content    string     `json:"content" validate:"required"`
	GroupID    *uuid.UUID `json:"group_id"`
	ReceiverID *uuid.UUID `json:"receiver_id"`
}

// ================== RESPONSE ==================
type GroupResponse struct {
	ChatGroupID uuid.UUID  `json:"chat_group_id"`
	Name        string     `json:"name"`
	IsGeneral   bool       `json:"is_general"`
	CreatedBy   *uuid.UUID `json:"created_by"`
	CreatedAt   string     `json:"created_at"`
}

type MessageResponse struct {
	MessageID  uuid.UUID  `json:"message_id"`
	Content    string     `json:"content"`
	SenderID   uuid.UUID  `json:"sender_id"`
	GroupID    *uuid.UUID `json:"group_id"`
	ReceiverID *uuid.UUID `json:"receiver_id"`
	CreatedAt  string     `json:"created_at"`
}

// ================ CONVERSION =================
func (r *MessageRequest) ToModel(senderID uuid.UUID) *model.MessageModel {
	return &model.MessageModel{
		MessageContent:    r.Content,
		MessageSenderID:   senderID,
		MessageGroupID:    r.GroupID,
		MessageReceiverID: r.ReceiverID,
	}
}

func ToGroupResponse(m *model.ChatGroupModel) *GroupResponse {
	return &GroupResponse{
		ChatGroupID: m.ChatGroupID,
		Name:        m.ChatGroupName,
		IsGeneral:   m.ChatGroupIsGeneral,
		CreatedBy:   m.ChatGroupCreatedBy,
		CreatedAt:   m.ChatGroupCreatedAt.Format(time.DateTime),
	}
}

func ToGroupResponseList(models []model.ChatGroupModel) []GroupResponse {
	var result []GroupResponse
	for _, m := range models {
		result = append(result, *ToGroupResponse(&m))
	}
	return result
}

func ToMessageResponse(m *model.MessageModel) *MessageResponse {
	return &MessageResponse{
		MessageID:  m.MessageID,
		Content:    m.MessageContent,
		SenderID:   m.MessageSenderID,
		GroupID:    m.MessageGroupID,
		ReceiverID: m.MessageReceiverID,
		CreatedAt:  m.MessageCreatedAt.Format(time.DateTime),
	}
}

func ToMessageResponseList(models []model.MessageModel) []MessageResponse {
	var result []MessageResponse
	for _, m := range models {
		result = append(result, *ToMessageResponse(&m))
	}
	return result
}

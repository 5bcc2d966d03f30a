package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"mentorhub_backend/internals/features/notifications/model"
)

type NotificationResponse struct {
	NotificationID uuid.UUID      `json:"notification_id"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	Type           string         `json:"type"`
	Read           bool           `json:"read"`
	Payload        datatypes.JSON `json:"payload"`
	CreatedAt      string         `json:"created_at"`
}

func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		NotificationID: m.NotificationID,
		Title:          m.NotificationTitle,
		Message:        m.NotificationMessage,
		Type:           m.NotificationType,
		Read:           m.NotificationRead,
		Payload:        m.NotificationPayload,
		CreatedAt:      m.NotificationCreatedAt.Format(time.DateTime),
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	var result []NotificationResponse
	for _, m := range models {
		result = append(result, *ToNotificationResponse(&m))
	}
	return result
}

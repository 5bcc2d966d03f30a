package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationModel struct {
	NotificationID        uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID    uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationTitle     string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationMessage   string         `gorm:"column:notification_message;type:text" json:"notification_message"`
	NotificationType      string         `gorm:"column:notification_type;type:varchar(30);not null" json:"notification_type"` // e.g. SESSION, CHAT, SYSTEM
	NotificationRead      bool           `gorm:"column:notification_read;not null;default:false" json:"notification_read"`
	NotificationPayload   datatypes.JSON `gorm:"column:notification_payload;type:jsonb" json:"notification_payload"` // deep-link context for the frontend
	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.NotificationID == uuid.Nil {
		n.NotificationID = uuid.New()
	}
	return nil
}

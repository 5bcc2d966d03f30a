package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	AnnouncementID         uuid.UUID `gorm:"column:announcement_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"announcement_id"`
	AnnouncementTitle      string    `gorm:"column:announcement_title;type:varchar(255);not null" json:"announcement_title"`
	AnnouncementMessage    string    `gorm:"column:announcement_message;type:text;not null" json:"announcement_message"`
	AnnouncementTargetRole string    `gorm:"column:announcement_target_role;type:varchar(20);not null;default:ALL" json:"announcement_target_role"`
	AnnouncementCreatedBy  uuid.UUID `gorm:"column:announcement_created_by;type:uuid;not null" json:"announcement_created_by"`
	AnnouncementCreatedAt  time.Time `gorm:"column:announcement_created_at;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt  time.Time `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}

func (a *AnnouncementModel) BeforeCreate(tx *gorm.DB) error {
	if a.AnnouncementID == uuid.Nil {
		a.AnnouncementID = uuid.New()
	}
	return nil
}

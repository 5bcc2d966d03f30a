package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatGroupModel. Only the platform-wide general group may carry a null
// creator; every user-created group records who made it.
type ChatGroupModel struct {
	ChatGroupID        uuid.UUID  `gorm:"column:chat_group_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"chat_group_id"`
	ChatGroupName      string     `gorm:"column:chat_group_name;type:varchar(150);not null" json:"chat_group_name"`
	ChatGroupIsGeneral bool       `gorm:"column:chat_group_is_general;not null;default:false" json:"chat_group_is_general"`
	ChatGroupCreatedBy *uuid.UUID `gorm:"column:chat_group_created_by;type:uuid" json:"chat_group_created_by"`
	ChatGroupCreatedAt time.Time  `gorm:"column:chat_group_created_at;autoCreateTime" json:"chat_group_created_at"`
}

func (ChatGroupModel) TableName() string {
	return "chat_groups"
}

func (g *ChatGroupModel) BeforeCreate(tx *gorm.DB) error {
	if g.ChatGroupID == uuid.Nil {
		g.ChatGroupID = uuid.New()
	}
	return nil
}

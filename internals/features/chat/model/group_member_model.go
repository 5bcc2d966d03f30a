package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupMemberModel struct {
	GroupMemberID uuid.UUID `gorm:"column:group_member_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"group_member_id"`
	GroupID       uuid.UUID `gorm:"column:group_id;type:uuid;not null;uniqueIndex:uq_group_member" json:"group_id"`
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_group_member" json:"user_id"`
	JoinedAt      time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
}

func (GroupMemberModel) TableName() string {
	return "group_members"
}

func (m *GroupMemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.GroupMemberID == uuid.Nil {
		m.GroupMemberID = uuid.New()
	}
	return nil
}

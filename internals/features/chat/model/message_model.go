package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMessageTarget = errors.New("message must target either a group or a direct receiver, not both")

// MessageModel. A message is either a group broadcast (group id set) or a
// direct message (receiver id set) — never both, never neither.
type MessageModel struct {
	MessageID         uuid.UUID  `gorm:"column:message_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"message_id"`
	MessageContent    string     `gorm:"column:message_content;type:text;not null" json:"message_content"`
	MessageSenderID   uuid.UUID  `gorm:"column:message_sender_id;type:uuid;not null;index" json:"message_sender_id"`
	MessageGroupID    *uuid.UUID `gorm:"column:message_group_id;type:uuid;index" json:"message_group_id"`
	MessageReceiverID *uuid.UUID `gorm:"column:message_receiver_id;type:uuid;index" json:"message_receiver_id"`
	MessageCreatedAt  time.Time  `gorm:"column:message_created_at;autoCreateTime" json:"message_created_at"`
}

func (MessageModel) TableName() string {
	return "messages"
}

func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.MessageID == uuid.Nil {
		m.MessageID = uuid.New()
	}
	return m.ValidateTarget()
}

func (m *MessageModel) ValidateTarget() error {
	hasGroup := m.MessageGroupID != nil && *m.MessageGroupID != uuid.Nil
	hasReceiver := m.MessageReceiverID != nil && *m.MessageReceiverID != uuid.Nil
	if hasGroup == hasReceiver {
		return ErrMessageTarget
	}
	return nil
}

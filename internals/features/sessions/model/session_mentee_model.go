package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionMenteeModel joins sessions and mentee users. The composite unique
// index keeps a mentee from enrolling twice in the same session.
type SessionMenteeModel struct {
	SessionMenteeID uuid.UUID `gorm:"column:session_mentee_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"session_mentee_id"`
	SessionID       uuid.UUID `gorm:"column:session_id;type:uuid;not null;uniqueIndex:uq_session_mentee" json:"session_id"`
	MenteeID        uuid.UUID `gorm:"column:mentee_id;type:uuid;not null;uniqueIndex:uq_session_mentee" json:"mentee_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SessionMenteeModel) TableName() string {
	return "session_mentees"
}

func (sm *SessionMenteeModel) BeforeCreate(tx *gorm.DB) error {
	if sm.SessionMenteeID == uuid.Nil {
		sm.SessionMenteeID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionModel struct {
	SessionID          uuid.UUID `gorm:"column:session_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"session_id"`
	SessionTitle       string    `gorm:"column:session_title;type:varchar(255);not null" json:"session_title"`
	SessionDescription string    `gorm:"column:session_description;type:text" json:"session_description"`
	SessionDate        time.Time `gorm:"column:session_date;not null" json:"session_date"`
	SessionDuration    int       `gorm:"column:session_duration;not null;default:60" json:"session_duration"` // minutes
	SessionStatus      string    `gorm:"column:session_status;type:varchar(20);not null;default:SCHEDULED" json:"session_status"`
	SessionMentorID    uuid.UUID `gorm:"column:session_mentor_id;type:uuid;not null;index" json:"session_mentor_id"`
	SessionCreatedAt   time.Time `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt   time.Time `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

func (s *SessionModel) BeforeCreate(tx *gorm.DB) error {
	if s.SessionID == uuid.Nil {
		s.SessionID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingModel struct {
	RatingID        uuid.UUID `gorm:"column:rating_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"rating_id"`
	RatingMentorID  uuid.UUID `gorm:"column:rating_mentor_id;type:uuid;not null;index" json:"rating_mentor_id"`
	RatingMenteeID  uuid.UUID `gorm:"column:rating_mentee_id;type:uuid;not null;index" json:"rating_mentee_id"`
	RatingScore     int       `gorm:"column:rating_score;not null;check:rating_score >= 1 AND rating_score <= 5" json:"rating_score"`
	RatingComment   string    `gorm:"column:rating_comment;type:text" json:"rating_comment"`
	RatingCreatedAt time.Time `gorm:"column:rating_created_at;autoCreateTime" json:"rating_created_at"`
	RatingUpdatedAt time.Time `gorm:"column:rating_updated_at;autoUpdateTime" json:"rating_updated_at"`
}

func (RatingModel) TableName() string {
	return "ratings"
}

func (r *RatingModel) BeforeCreate(tx *gorm.DB) error {
	if r.RatingID == uuid.Nil {
		r.RatingID = uuid.New()
	}
	return nil
}

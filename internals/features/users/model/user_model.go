package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID           uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(100);not null" json:"-"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:MENTEE" json:"role"`
	Status       string    `gorm:"column:status;type:varchar(30);not null;default:ACTIVE" json:"status"`
	Verified     bool      `gorm:"column:verified;not null;default:false" json:"verified"`
	AvatarURL    *string   `gorm:"column:avatar_url;type:text" json:"avatar_url"`
	CompanyName  *string   `gorm:"column:company_name;type:varchar(150)" json:"company_name"` // mentee business name
	Expertise    *string   `gorm:"column:expertise;type:varchar(150)" json:"expertise"`       // mentor specialty
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

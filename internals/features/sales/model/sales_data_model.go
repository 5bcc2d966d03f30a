package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesDataModel holds one self-reported revenue figure per user per
// calendar month; the composite unique index enforces the period rule.
type SalesDataModel struct {
	SalesID        uuid.UUID `gorm:"column:sales_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"sales_id"`
	SalesUserID    uuid.UUID `gorm:"column:sales_user_id;type:uuid;not null;uniqueIndex:uq_sales_period" json:"sales_user_id"`
	SalesRevenue   float64   `gorm:"column:sales_revenue;type:numeric(14,2);not null" json:"sales_revenue"`
	SalesCategory  string    `gorm:"column:sales_category;type:varchar(100)" json:"sales_category"`
	SalesMonth     int       `gorm:"column:sales_month;not null;uniqueIndex:uq_sales_period;check:sales_month >= 1 AND sales_month <= 12" json:"sales_month"`
	SalesYear      int       `gorm:"column:sales_year;not null;uniqueIndex:uq_sales_period" json:"sales_year"`
	SalesCreatedAt time.Time `gorm:"column:sales_created_at;autoCreateTime" json:"sales_created_at"`
	SalesUpdatedAt time.Time `gorm:"column:sales_updated_at;autoUpdateTime" json:"sales_updated_at"`
}

func (SalesDataModel) TableName() string {
	return "sales_data"
}

func (s *SalesDataModel) BeforeCreate(tx *gorm.DB) error {
	if s.SalesID == uuid.Nil {
		s.SalesID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ResourceModel struct {
	ResourceID          uuid.UUID      `gorm:"column:resource_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"resource_id"`
	ResourceTitle       string         `gorm:"column:resource_title;type:varchar(255);not null" json:"resource_title"`
	ResourceDescription string         `gorm:"column:resource_description;type:text" json:"resource_description"`
	ResourceFileURL     string         `gorm:"column:resource_file_url;type:text;not null" json:"resource_file_url"`
	ResourceFileName    string         `gorm:"column:resource_file_name;type:varchar(255);not null" json:"resource_file_name"`
	ResourceFileSize    int64          `gorm:"column:resource_file_size;not null;default:0" json:"resource_file_size"` // bytes
	ResourceFileType    string         `gorm:"column:resource_file_type;type:varchar(20)" json:"resource_file_type"`
	ResourceTags        pq.StringArray `gorm:"column:resource_tags;type:text[]" json:"resource_tags"`
	ResourceUploadedBy  uuid.UUID      `gorm:"column:resource_uploaded_by;type:uuid;not null" json:"resource_uploaded_by"`
	ResourceCreatedAt   time.Time      `gorm:"column:resource_created_at;autoCreateTime" json:"resource_created_at"`
	ResourceUpdatedAt   time.Time      `gorm:"column:resource_updated_at;autoUpdateTime" json:"resource_updated_at"`
}

func (ResourceModel) TableName() string {
	return "resources"
}

func (r *ResourceModel) BeforeCreate(tx *gorm.DB) error {
	if r.ResourceID == uuid.Nil {
		r.ResourceID = uuid.New()
	}
	return nil
}

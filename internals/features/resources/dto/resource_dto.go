package dto

import (
	"time"

	"github.com/google/uuid"

	"mentorhub_backend/internals/constants"
	"mentorhub_backend/internals/features/resources/model"
)

type ResourceRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Description string   `json:"description"`
	FileURL     string   `json:"file_url" validate:"required,url"`
	FileName    string   `json:"file_name" validate:"required"`
	FileSize    int64    `json:"file_size" validate:"gte=0"`
	Tags        []string `json:"tags" validate:"omitempty,max=10,dive,min=1,max=50"`
}

type ResourceResponse struct {
	ResourceID  uuid.UUID `json:"resource_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileURL     string    `json:"file_url"`
	FileName    string    `json:"file_name"`
	FileSize    int64     `json:"file_size"`
	FileType    string    `json:"file_type"`
	Tags        []string  `json:"tags"`
	UploadedBy  uuid.UUID `json:"uploaded_by"`
	CreatedAt   string    `json:"created_at"`
}

func (r *ResourceRequest) ToModel(uploadedBy uuid.UUID) *model.ResourceModel {
	return &model.ResourceModel{
		ResourceTitle:       r.Title,
		ResourceDescription: r.Description,
		ResourceFileURL:     r.FileURL,
		ResourceFileName:    r.FileName,
		ResourceFileSize:    r.FileSize,
		ResourceFileType:    constants.DetectFileTypeFromExt(r.FileName),
		ResourceTags:        r.Tags,
		ResourceUploadedBy:  uploadedBy,
	}
}

func ToResourceResponse(m *model.ResourceModel) *ResourceResponse {
	return &ResourceResponse{
		ResourceID:  m.ResourceID,
		Title:       m.ResourceTitle,
		Description: m.ResourceDescription,
		FileURL:     m.ResourceFileURL,
		FileName:    m.ResourceFileName,
		FileSize:    m.ResourceFileSize,
		FileType:    m.ResourceFileType,
		Tags:        m.ResourceTags,
		UploadedBy:  m.ResourceUploadedBy,
		CreatedAt:   m.ResourceCreatedAt.Format(time.DateTime),
	}
}

func ToResourceResponseList(models []model.ResourceModel) []ResourceResponse {
	var result []ResourceResponse
	for _, m := range models {
		result = append(result, *ToResourceResponse(&m))
	}
	return result
}

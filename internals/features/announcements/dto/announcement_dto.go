package dto

import (
	"time"

	"github.com/google/uuid"

	"mentorhub_backend/internals/features/announcements/model"
)

type AnnouncementRequest struct {
	Title      string `json:"title" validate:"required,min=3,max=255"`
	Message    string `json:"message" validate:"required"`
	TargetRole string `json:"target_role" validate:"required,oneof=ALL ADMIN MENTOR MENTEE"`
}

type AnnouncementResponse struct {
	AnnouncementID uuid.UUID `json:"announcement_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	TargetRole     string    `json:"target_role"`
	CreatedBy      uuid.UUID `json:"created_by"`
	CreatedAt      string    `json:"created_at"`
}

func (r *AnnouncementRequest) ToModel(createdBy uuid.UUID) *model.AnnouncementModel {
	return &model.AnnouncementModel{
		AnnouncementTitle:      r.Title,
		AnnouncementMessage:    r.Message,
		AnnouncementTargetRole: r.TargetRole,
		AnnouncementCreatedBy:  createdBy,
	}
}

func ToAnnouncementResponse(m *model.AnnouncementModel) *AnnouncementResponse {
	return &AnnouncementResponse{
		AnnouncementID: m.AnnouncementID,
		Title:          m.AnnouncementTitle,
		Message:        m.AnnouncementMessage,
		TargetRole:     m.AnnouncementTargetRole,
		CreatedBy:      m.AnnouncementCreatedBy,
		CreatedAt:      m.AnnouncementCreatedAt.Format(time.DateTime),
	}
}

func ToAnnouncementResponseList(models []model.AnnouncementModel) []AnnouncementResponse {
	var result []AnnouncementResponse
	for _, m := range models {
		result = append(result, *ToAnnouncementResponse(&m))
	}
	return result
}

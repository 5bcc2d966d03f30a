package dto

import (
	"time"

	"github.com/google/uuid"

	"mentorhub_backend/internals/features/sessions/model"
)

// ================== REQUEST ==================
type SessionRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=255"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Duration    int       `json:"duration" validate:"required,min=15,max=480"` // minutes
}

// ================== RESPONSE ==================
type SessionResponse struct {
	SessionID   uuid.UUID `json:"session_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Duration    int       `json:"duration"`
	Status      string    `json:"status"`
	MentorID    uuid.UUID `json:"mentor_id"`
	CreatedAt   string    `json:"created_at"`
}

type MentorSummaryResponse struct {
	MentorID          uuid.UUID `json:"mentor_id"`
	CompletedSessions int       `json:"completed_sessions"`
	ExperienceLevel   string    `json:"experience_level"`
}

// ================ CONVERSION =================
func (r *SessionRequest) ToModel(mentorID uuid.UUID) *model.SessionModel {
	return &model.SessionModel{
		SessionTitle:       r.Title,
		SessionDescription: r.Description,
		SessionDate:        r.Date,
		SessionDuration:    r.Duration,
		SessionMentorID:    mentorID,
	}
}

func ToSessionResponse(m *model.SessionModel) *SessionResponse {
	return &SessionResponse{
		SessionID:   m.SessionID,
		Title:       m.SessionTitle,
		Description: m.SessionDescription,
		Date:        m.SessionDate.Format(time.RFC3339),
		Duration:    m.SessionDuration,
		Status:      m.SessionStatus,
		MentorID:    m.SessionMentorID,
		CreatedAt:   m.SessionCreatedAt.Format(time.DateTime),
	}
}

func ToSessionResponseList(models []model.SessionModel) []SessionResponse {
	var result []SessionResponse
	for _, m := range models {
		result = append(result, *ToSessionResponse(&m))
	}
	return result
}

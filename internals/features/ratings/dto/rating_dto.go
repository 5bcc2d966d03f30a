package dto

import (
	"time"

	"github.com/google/uuid"

	"mentorhub_backend/internals/features/ratings/model"
)

type RatingRequest struct {
	MentorID uuid.UUID `json:"mentor_id" validate:"required"`
	Score    int       `json:"score" validate:"required,min=1,max=5"`
	Comment  string    `json:"comment" validate:"max=2000"`
}

type RatingResponse struct {
	RatingID  uuid.UUID `json:"rating_id"`
	MentorID  uuid.UUID `json:"mentor_id"`
	MenteeID  uuid.UUID `json:"mentee_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt string    `json:"created_at"`
}

type MentorRatingSummary struct {
	MentorID     uuid.UUID `json:"mentor_id"`
	AverageScore float64   `json:"average_score"`
	RatingCount  int64     `json:"rating_count"`
}

func (r *RatingRequest) ToModel(menteeID uuid.UUID) *model.RatingModel {
	return &model.RatingModel{
		RatingMentorID: r.MentorID,
		RatingMenteeID: menteeID,
		RatingScore:    r.Score,
		RatingComment:  r.Comment,
	}
}

func ToRatingResponse(m *model.RatingModel) *RatingResponse {
	return &RatingResponse{
		RatingID:  m.RatingID,
		MentorID:  m.RatingMentorID,
		MenteeID:  m.RatingMenteeID,
		Score:     m.RatingScore,
		Comment:   m.RatingComment,
		CreatedAt: m.RatingCreatedAt.Format(time.DateTime),
	}
}

func ToRatingResponseList(models []model.RatingModel) []RatingResponse {
	var result []RatingResponse
	for _, m := range models {
		result = append(result, *ToRatingResponse(&m))
	}
	return result
}

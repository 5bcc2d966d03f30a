package dto

import (
	"time"

	"github.com/google/uuid"

	"mentorhub_backend/internals/features/sales/model"
)

type SalesEntryRequest struct {
	Revenue  float64 `json:"revenue" validate:"required,gte=0"`
	Category string  `json:"category" validate:"max=100"`
	Month    int     `json:"month" validate:"required,min=1,max=12"`
	Year     int     `json:"year" validate:"required,min=2000,max=2100"`
}

type SalesEntryResponse struct {
	SalesID   uuid.UUID `json:"sales_id"`
	UserID    uuid.UUID `json:"user_id"`
	Revenue   float64   `json:"revenue"`
	Category  string    `json:"category"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	CreatedAt string    `json:"created_at"`
}

// MonthlySummary is one aggregated dashboard point.
type MonthlySummary struct {
	Month   int     `json:"month"`
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
}

func (r *SalesEntryRequest) ToModel(userID uuid.UUID) *model.SalesDataModel {
	return &model.SalesDataModel{
		SalesUserID:   userID,
		SalesRevenue:  r.Revenue,
		SalesCategory: r.Category,
		SalesMonth:    r.Month,
		SalesYear:     r.Year,
	}
}

func ToSalesEntryResponse(m *model.SalesDataModel) *SalesEntryResponse {
	return &SalesEntryResponse{
		SalesID:   m.SalesID,
		UserID:    m.SalesUserID,
		Revenue:   m.SalesRevenue,
		Category:  m.SalesCategory,
		Month:     m.SalesMonth,
		Year:      m.SalesYear,
		CreatedAt: m.SalesCreatedAt.Format(time.DateTime),
	}
}

func ToSalesEntryResponseList(models []model.SalesDataModel) []SalesEntryResponse {
	var result []SalesEntryResponse
	for _, m := range models {
		result = append(result, *ToSalesEntryResponse(&m))
	}
	return result
}

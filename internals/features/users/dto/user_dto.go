package dto

import (
	"time"

	"github.com/google/uuid"

	"mentorhub_backend/internals/features/users/model"
)

// ================== REQUEST ==================
type RegisterRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Role        string  `json:"role" validate:"required,oneof=MENTOR MENTEE"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=150"`
	Expertise   *string `json:"expertise" validate:"omitempty,max=150"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ================== RESPONSE ==================
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	Verified    bool      `json:"verified"`
	AvatarURL   *string   `json:"avatar_url"`
	CompanyName *string   `json:"company_name"`
	Expertise   *string   `json:"expertise"`
	CreatedAt   string    `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// ================ CONVERSION =================
func (r *RegisterRequest) ToModel(passwordHash, status string) *model.UserModel {
	return &model.UserModel{
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: passwordHash,
		Role:         r.Role,
		Status:       status,
		CompanyName:  r.CompanyName,
		Expertise:    r.Expertise,
	}
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Role:        m.Role,
		Status:      m.Status,
		Verified:    m.Verified,
		AvatarURL:   m.AvatarURL,
		CompanyName: m.CompanyName,
		Expertise:   m.Expertise,
		CreatedAt:   m.CreatedAt.Format(time.DateTime),
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	var result []UserResponse
	for _, m := range models {
		result = append(result, *ToUserResponse(&m))
	}
	return result
}

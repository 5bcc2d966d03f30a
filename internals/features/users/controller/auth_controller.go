package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentorhub_backend/internals/configs"
	"mentorhub_backend/internals/constants"
	"mentorhub_backend/internals/features/users/dto"
	"mentorhub_backend/internals/features/users/model"
	"mentorhub_backend/internals/features/users/service"
	helper "mentorhub_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/auth/register
// Mentors start in PENDING_APPROVAL until an admin approves them;
// mentee businesses are active right away.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existing model.UserModel
	if err := ctrl.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] register lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}

	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	status := constants.StatusActive
	if req.Role == constants.RoleMentor {
		status = constants.StatusPendingApproval
	}

	newUser := req.ToModel(hash, status)
	if err := ctrl.DB.Create(newUser).Error; err != nil {
		log.Printf("[ERROR] create user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Account registered", dto.ToUserResponse(newUser))
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user model.UserModel
	if err := ctrl.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := helper.CheckPasswordHash(user.PasswordHash, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if user.Status != constants.StatusActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is awaiting approval")
	}

	token, err := service.CreateAccessToken(configs.JWTSecret, user.ID, user.Role, accessTokenTTL)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		User:        *dto.ToUserResponse(&user),
	})
}

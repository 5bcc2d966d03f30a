package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mentorhub_backend/internals/constants"
	"mentorhub_backend/internals/features/ratings/dto"
	"mentorhub_backend/internals/features/ratings/model"
	userModel "mentorhub_backend/internals/features/users/model"
	helper "mentorhub_backend/internals/helpers"
)

type RatingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRatingController(db *gorm.DB) *RatingController {
	return &RatingController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/ratings — mentee rates a mentor
func (ctrl *RatingController) CreateRating(c *fiber.Ctx) error {
	menteeID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var req dto.RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var mentor userModel.UserModel
	if err := ctrl.DB.First(&mentor, "id = ? AND role = ?", req.MentorID, constants.RoleMentor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Mentor not found")
	}

	newRating := req.ToModel(menteeID)
	if err := ctrl.DB.Create(newRating).Error; err != nil {
		log.Printf("[ERROR] create rating: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save rating")
	}
	return helper.JsonCreated(c, "Rating submitted", dto.ToRatingResponse(newRating))
}

// 🟢 GET /api/ratings/mentors/:id — list + average for one mentor
func (ctrl *RatingController) MentorRatings(c *fiber.Ctx) error {
	mentorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mentor id")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	var summary dto.MentorRatingSummary
	summary.MentorID = mentorID
	if err := ctrl.DB.Model(&model.RatingModel{}).
		Where("rating_mentor_id = ?", mentorID).
		Select("COALESCE(AVG(rating_score), 0) AS average_score, COUNT(*) AS rating_count").
		Row().Scan(&summary.AverageScore, &summary.RatingCount); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate ratings")
	}

	var ratings []model.RatingModel
	if err := ctrl.DB.Where("rating_mentor_id = ?", mentorID).
		Order("rating_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&ratings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ratings")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"summary": summary,
		"ratings": dto.ToRatingResponseList(ratings),
	})
}

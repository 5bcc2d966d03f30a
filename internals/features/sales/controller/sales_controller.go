package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mentorhub_backend/internals/features/sales/dto"
	"mentorhub_backend/internals/features/sales/model"
	helper "mentorhub_backend/internals/helpers"
)

type SalesController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSalesController(db *gorm.DB) *SalesController {
	return &SalesController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/sales — mentee records one month's revenue.
// One row per (user, month, year); a duplicate period is a 409.
func (ctrl *SalesController) CreateEntry(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var req dto.SalesEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var existing model.SalesDataModel
	err = ctrl.DB.Where("sales_user_id = ? AND sales_month = ? AND sales_year = ?",
		userID, req.Month, req.Year).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Revenue for this period is already recorded")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check period")
	}

	entry := req.ToModel(userID)
	if err := ctrl.DB.Create(entry).Error; err != nil {
		log.Printf("[ERROR] create sales entry: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save sales entry")
	}
	return helper.JsonCreated(c, "Sales entry recorded", dto.ToSalesEntryResponse(entry))
}

// 🟢 GET /api/sales — caller's own entries, newest period first
func (ctrl *SalesController) ListOwn(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var entries []model.SalesDataModel
	if err := ctrl.DB.Where("sales_user_id = ?", userID).
		Order("sales_year DESC, sales_month DESC").
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sales data")
	}
	return helper.JsonOK(c, "ok", dto.ToSalesEntryResponseList(entries))
}

// 🟢 GET /api/sales/summary?year= — monthly totals for the dashboard chart
func (ctrl *SalesController) MonthlySummary(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	q := ctrl.DB.Model(&model.SalesDataModel{}).
		Where("sales_user_id = ?", userID)
	if year := c.QueryInt("year", 0); year > 0 {
		q = q.Where("sales_year = ?", year)
	}

	var summary []dto.MonthlySummary
	if err := q.Select("sales_month AS month, sales_year AS year, SUM(sales_revenue) AS revenue").
		Group("sales_year, sales_month").
		Order("year ASC, month ASC").
		Scan(&summary).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate sales data")
	}
	return helper.JsonOK(c, "ok", summary)
}

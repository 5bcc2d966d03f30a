package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mentorhub_backend/internals/constants"
	"mentorhub_backend/internals/features/sessions/dto"
	"mentorhub_backend/internals/features/sessions/model"
	userModel "mentorhub_backend/internals/features/users/model"
	helper "mentorhub_backend/internals/helpers"
)

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/sessions — mentor schedules a session
func (ctrl *SessionController) CreateSession(c *fiber.Ctx) error {
	mentorID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var req dto.SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	// The mentor FK must reference an active MENTOR row.
	var mentor userModel.UserModel
	if err := ctrl.DB.First(&mentor, "id = ? AND role = ?", mentorID, constants.RoleMentor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Only mentors can schedule sessions")
	}

	newSession := req.ToModel(mentorID)
	newSession.SessionStatus = constants.SessionScheduled
	if err := ctrl.DB.Create(newSession).Error; err != nil {
		log.Printf("[ERROR] create session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	return helper.JsonCreated(c, "Session scheduled", dto.ToSessionResponse(newSession))
}

// 🟢 GET /api/sessions?status=&mentor_id=&page=&per_page=
func (ctrl *SessionController) ListSessions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.SessionModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("session_status = ?", status)
	}
	if mentorID := c.Query("mentor_id"); mentorID != "" {
		id, err := uuid.Parse(mentorID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mentor_id")
		}
		q = q.Where("session_mentor_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count sessions")
	}

	var sessions []model.SessionModel
	if err := q.Order("session_date ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sessions")
	}

	return helper.JsonList(c, "ok", dto.ToSessionResponseList(sessions),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 POST /api/sessions/:id/enroll — mentee joins a session
func (ctrl *SessionController) Enroll(c *fiber.Ctx) error {
	menteeID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var session model.SessionModel
	if err := ctrl.DB.First(&session, "session_id = ?", sessionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}
	if session.SessionStatus != constants.SessionScheduled {
		return helper.JsonError(c, fiber.StatusConflict, "Session is no longer open for enrollment")
	}

	var existing model.SessionMenteeModel
	err = ctrl.DB.Where("session_id = ? AND mentee_id = ?", sessionID, menteeID).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Already enrolled in this session")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check enrollment")
	}

	enrollment := model.SessionMenteeModel{SessionID: sessionID, MenteeID: menteeID}
	if err := ctrl.DB.Create(&enrollment).Error; err != nil {
		log.Printf("[ERROR] enroll mentee: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enroll")
	}

	return helper.JsonCreated(c, "Enrolled in session", enrollment)
}

// 🟢 POST /api/sessions/:id/complete — mentor closes their own session
func (ctrl *SessionController) CompleteSession(c *fiber.Ctx) error {
	mentorID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var session model.SessionModel
	if err := ctrl.DB.First(&session, "session_id = ?", sessionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}
	if session.SessionMentorID != mentorID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not your session")
	}

	if err := ctrl.DB.Model(&session).
		Update("session_status", constants.SessionCompleted).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to complete session")
	}
	return helper.JsonUpdated(c, "Session completed", dto.ToSessionResponse(&session))
}

// 🟢 GET /api/sessions/mentors/:id/summary — completed count + experience level
func (ctrl *SessionController) MentorSummary(c *fiber.Ctx) error {
	mentorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mentor id")
	}

	var completed int64
	if err := ctrl.DB.Model(&model.SessionModel{}).
		Where("session_mentor_id = ? AND session_status = ?", mentorID, constants.SessionCompleted).
		Count(&completed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count sessions")
	}

	return helper.JsonOK(c, "ok", dto.MentorSummaryResponse{
		MentorID:          mentorID,
		CompletedSessions: int(completed),
		ExperienceLevel:   model.ExperienceLevel(int(completed)),
	})
}

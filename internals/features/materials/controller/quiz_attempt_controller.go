// file: internals/features/materials/controller/quiz_attempt_controller.go
package controller

import (
	"math"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/materials/dto"
	model "sekolahku_backend/internals/features/materials/model"
	helper "sekolahku_backend/internals/helpers"
)

type QuizAttemptController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuizAttemptController(db *gorm.DB) *QuizAttemptController {
	return &QuizAttemptController{DB: db, Validator: validator.New()}
}

// POST /api/quiz-attempts — simpan nilai sebagai persentase bulat
func (ctl *QuizAttemptController) Create(c *fiber.Ctx) error {
	var req dto.QuizAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Score > req.TotalQuestions {
		return helper.JsonError(c, fiber.StatusBadRequest, "Skor tidak boleh melebihi jumlah soal")
	}

	userID, _ := uuid.Parse(req.UserID)
	materialID, _ := uuid.Parse(req.MaterialID)

	pct := int(math.Round(float64(req.Score) / float64(req.TotalQuestions) * 100))

	row := model.QuizAttemptModel{
		AttemptUserID:         userID,
		AttemptMaterialID:     materialID,
		AttemptScore:          pct,
		AttemptTotalQuestions: req.TotalQuestions,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Nilai quiz berhasil disimpan", dto.FromModelQuizAttempt(&row))
}

// GET /api/quiz-attempts/:id — riwayat attempt satu user
func (ctl *QuizAttemptController) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var rows []model.QuizAttemptModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attempt_user_id = ?", userID).
		Order("attempt_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Riwayat nilai quiz berhasil diambil", dto.FromModelQuizAttempts(rows))
}

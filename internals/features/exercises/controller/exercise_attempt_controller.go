// file: internals/features/exercises/controller/exercise_attempt_controller.go
package controller

import (
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/exercises/dto"
	model "sekolahku_backend/internals/features/exercises/model"
	service "sekolahku_backend/internals/features/exercises/service"
	helper "sekolahku_backend/internals/helpers"
)

type ExerciseAttemptController struct {
	Store     service.ExerciseStore
	Validator *validator.Validate
}

func NewExerciseAttemptController(db *gorm.DB) *ExerciseAttemptController {
	return &ExerciseAttemptController{
		Store:     service.NewGormExerciseStore(db),
		Validator: validator.New(),
	}
}

// POST /api/exercise-attempts — skor disimpan apa adanya, bukan persentase
func (ctl *ExerciseAttemptController) Create(c *fiber.Ctx) error {
	var req dto.ExerciseAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, _ := uuid.Parse(req.UserID)
	exerciseID, _ := uuid.Parse(req.ExerciseID)

	row := model.ExerciseAttemptModel{
		AttemptUserID:         userID,
		AttemptExerciseID:     exerciseID,
		AttemptScore:          req.Score,
		AttemptTotalQuestions: req.TotalQuestions,
	}
	if err := ctl.Store.CreateAttempt(c.Context(), &row); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Hasil latihan berhasil disimpan", dto.FromModelAttempt(&row))
}

// GET /api/exercise-attempts/:userId — riwayat attempt dengan latihannya
func (ctl *ExerciseAttemptController) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.Params("userId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rows, err := ctl.Store.ListAttemptsByUser(c.Context(), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Riwayat nilai latihan berhasil diambil", dto.FromModelAttempts(rows))
}

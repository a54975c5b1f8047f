// file: internals/features/materials/controller/quiz_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/materials/dto"
	model "sekolahku_backend/internals/features/materials/model"
	helper "sekolahku_backend/internals/helpers"
)

type QuizController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db, Validator: validator.New()}
}

func (ctl *QuizController) materialExists(c *fiber.Ctx, id uuid.UUID) (bool, error) {
	var count int64
	err := ctl.DB.WithContext(c.Context()).
		Model(&model.LearningMaterialModel{}).
		Where("material_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// GET /api/quiz
func (ctl *QuizController) List(c *fiber.Ctx) error {
	var rows []model.QuizModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("quiz_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Data quiz berhasil diambil", dto.FromModelQuizzes(rows))
}

// GET /api/quiz/:id
func (ctl *QuizController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.QuizModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "quiz_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Data quiz berhasil diambil", dto.FromModelQuiz(&row))
}

// GET /api/quiz/by-material/:id — quiz milik satu materi, urut waktu buat
func (ctl *QuizController) ListByMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var rows []model.QuizModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("quiz_material_id = ?", id).
		Order("quiz_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Data quiz berhasil diambil", dto.FromModelQuizzes(rows))
}

// POST /api/quiz
func (ctl *QuizController) Create(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel()
	ok, err := ctl.materialExists(c, m.QuizMaterialID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Material ID tidak ditemukan")
	}

	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Quiz berhasil dibuat", dto.FromModelQuiz(m))
}

// PUT /api/quiz/:id
func (ctl *QuizController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.QuizModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "quiz_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel()
	ok, err := ctl.materialExists(c, m.QuizMaterialID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Material ID tidak ditemukan")
	}

	row.QuizMaterialID = m.QuizMaterialID
	row.QuizQuestion = m.QuizQuestion
	row.QuizOptionA = m.QuizOptionA
	row.QuizOptionB = m.QuizOptionB
	row.QuizOptionC = m.QuizOptionC
	row.QuizOptionD = m.QuizOptionD
	row.QuizCorrect = m.QuizCorrect

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Quiz berhasil diperbarui", dto.FromModelQuiz(&row))
}

// DELETE /api/quiz/:id
func (ctl *QuizController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.QuizModel{}, "quiz_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz tidak ditemukan")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Quiz berhasil dihapus")
}

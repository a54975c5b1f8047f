// file: internals/features/exercises/controller/exercise_controller.go
package controller

import (
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/exercises/dto"
	service "sekolahku_backend/internals/features/exercises/service"
	helper "sekolahku_backend/internals/helpers"
)

type ExerciseController struct {
	Store     service.ExerciseStore
	Validator *validator.Validate
}

func NewExerciseController(db *gorm.DB) *ExerciseController {
	return &ExerciseController{
		Store:     service.NewGormExerciseStore(db),
		Validator: validator.New(),
	}
}

// GET /api/exercises — urut waktu buat, author + soal ikut dimuat
func (ctl *ExerciseController) List(c *fiber.Ctx) error {
	rows, err := ctl.Store.ListExercises(c.Context())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Daftar latihan berhasil diambil", dto.FromModelExercises(rows))
}

// GET /api/exercises/:id
func (ctl *ExerciseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID latihan tidak valid")
	}

	row, err := ctl.Store.FindExercise(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Latihan tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail latihan berhasil diambil", dto.FromModelExercise(row))
}

// POST /api/exercises — latihan + semua soal dalam satu transaksi
func (ctl *ExerciseController) Create(c *fiber.Ctx) error {
	var req dto.ExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.FromFiberError(c, err)
	}

	exercise := req.ToModel()
	questions := req.ToQuestionModels(exercise.ExerciseID)
	if err := ctl.Store.CreateExerciseWithQuestions(c.Context(), exercise, questions); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Latihan dan soal berhasil dibuat", dto.FromModelExercise(exercise))
}

// PUT /api/exercises/:id — ganti borongan: update skalar, hapus semua soal
// lama, masukkan set baru. Atomik: gagal di tengah berarti rollback semua.
func (ctl *ExerciseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID latihan tidak valid")
	}

	var req dto.ExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.FromFiberError(c, err)
	}

	exercise, err := ctl.Store.FindExercise(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if exercise == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Latihan tidak ditemukan")
	}

	incoming := req.ToModel()
	exercise.ExerciseTitle = incoming.ExerciseTitle
	exercise.ExerciseDescription = incoming.ExerciseDescription
	exercise.ExerciseGrade = incoming.ExerciseGrade
	exercise.ExerciseAuthorID = incoming.ExerciseAuthorID

	questions := req.ToQuestionModels(exercise.ExerciseID)
	if err := ctl.Store.ReplaceExerciseQuestions(c.Context(), exercise, questions); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Latihan berhasil diperbarui", dto.FromModelExercise(exercise))
}

// DELETE /api/exercises/:id — cascade ke soal & attempt
func (ctl *ExerciseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID latihan tidak valid")
	}

	affected, err := ctl.Store.DeleteExercise(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Latihan tidak ditemukan")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Latihan berhasil dihapus")
}

// file: internals/features/discussions/controller/discussion_controller.go
package controller

import (
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/discussions/dto"
	model "sekolahku_backend/internals/features/discussions/model"
	service "sekolahku_backend/internals/features/discussions/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type DiscussionController struct {
	Store     service.DiscussionStore
	Validator *validator.Validate
}

func NewDiscussionController(db *gorm.DB) *DiscussionController {
	return &DiscussionController{
		Store:     service.NewGormDiscussionStore(db),
		Validator: validator.New(),
	}
}

// GET /api/discussions — terbaru dulu, author + komentar ikut dimuat
func (ctl *DiscussionController) List(c *fiber.Ctx) error {
	rows, err := ctl.Store.ListDiscussions(c.Context())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Data diskusi berhasil diambil", dto.FromModelDiscussions(rows))
}

// POST /api/discussions
func (ctl *DiscussionController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Anda harus login untuk membuat diskusi")
	}

	var req dto.DiscussionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if strings.TrimSpace(req.Content) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Konten diskusi tidak boleh kosong")
	}

	// token bisa saja basi: pastikan baris penulis masih ada
	exists, err := ctl.Store.AuthorExists(c.Context(), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	row := model.DiscussionModel{
		DiscussionContent:  strings.TrimSpace(req.Content),
		DiscussionAuthorID: userID,
	}
	if err := ctl.Store.CreateDiscussion(c.Context(), &row); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Diskusi berhasil dibuat", dto.FromModelDiscussion(&row))
}

// PUT /api/discussions/:id — hanya penulis
func (ctl *DiscussionController) Update(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	row, err := ctl.Store.FindDiscussion(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Diskusi tidak ditemukan")
	}
	if row.DiscussionAuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses untuk mengubah diskusi ini")
	}

	var req dto.DiscussionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if strings.TrimSpace(req.Content) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Konten diskusi tidak boleh kosong")
	}

	row.DiscussionContent = strings.TrimSpace(req.Content)
	if err := ctl.Store.SaveDiscussion(c.Context(), row); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Diskusi berhasil diperbarui", dto.FromModelDiscussion(row))
}

// DELETE /api/discussions/:id — hanya penulis; cascade ke komentar
func (ctl *DiscussionController) Delete(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	row, err := ctl.Store.FindDiscussion(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Diskusi tidak ditemukan")
	}
	if row.DiscussionAuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses untuk menghapus diskusi ini")
	}

	if err := ctl.Store.DeleteDiscussion(c.Context(), row); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Diskusi berhasil dihapus")
}

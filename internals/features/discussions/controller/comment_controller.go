// file: internals/features/discussions/controller/comment_controller.go
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

type CommentController struct {
	Store     service.DiscussionStore
	Validator *validator.Validate
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{
		Store:     service.NewGormDiscussionStore(db),
		Validator: validator.New(),
	}
}

// POST /api/comments
func (ctl *CommentController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Anda harus login untuk berkomentar")
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if strings.TrimSpace(req.Content) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Konten komentar tidak boleh kosong")
	}
	if strings.TrimSpace(req.DiscussionID) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "discussionId harus disertakan")
	}
	discussionID, err := uuid.Parse(strings.TrimSpace(req.DiscussionID))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "discussionId harus disertakan")
	}

	exists, err := ctl.Store.DiscussionExists(c.Context(), discussionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusNotFound, "Diskusi tidak ditemukan")
	}

	row := model.CommentModel{
		CommentDiscussionID: discussionID,
		CommentContent:      strings.TrimSpace(req.Content),
		CommentAuthorID:     userID,
	}
	if err := ctl.Store.CreateComment(c.Context(), &row); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Komentar berhasil dibuat", dto.FromModelComment(&row))
}

// PUT /api/comments/:id — hanya penulis
func (ctl *CommentController) Update(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	row, err := ctl.Store.FindComment(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Komentar tidak ditemukan")
	}
	if row.CommentAuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses untuk mengubah komentar ini")
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if strings.TrimSpace(req.Content) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Konten komentar tidak boleh kosong")
	}

	row.CommentContent = strings.TrimSpace(req.Content)
	if err := ctl.Store.SaveComment(c.Context(), row); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Komentar berhasil diperbarui", dto.FromModelComment(row))
}

// DELETE /api/comments/:id — hanya penulis
func (ctl *CommentController) Delete(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	row, err := ctl.Store.FindComment(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Komentar tidak ditemukan")
	}
	if row.CommentAuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses untuk menghapus komentar ini")
	}

	if err := ctl.Store.DeleteComment(c.Context(), row); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Komentar berhasil dihapus")
}

// file: internals/features/materials/controller/material_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/materials/dto"
	model "sekolahku_backend/internals/features/materials/model"
	helper "sekolahku_backend/internals/helpers"
	helperOSS "sekolahku_backend/internals/helpers/oss"
)

type MaterialController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Blob      helperOSS.BlobService
}

func NewMaterialController(db *gorm.DB, blob helperOSS.BlobService) *MaterialController {
	return &MaterialController{
		DB:        db,
		Validator: validator.New(),
		Blob:      blob,
	}
}

// mergeMaterialForm menggabungkan field form dengan nilai lama: field yang
// tidak dikirim memakai nilai lama, hasil akhirnya wajib terisi.
func mergeMaterialForm(c *fiber.Ctx, oldTitle, oldContent string) (string, string, error) {
	title := oldTitle
	content := oldContent
	if v := strings.TrimSpace(c.FormValue("title")); v != "" {
		title = v
	}
	if v := strings.TrimSpace(c.FormValue("content")); v != "" {
		content = v
	}
	if title == "" || content == "" {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Judul dan konten materi harus diisi")
	}
	return title, content, nil
}

// GET /api/learning-materials — urut waktu buat naik
func (ctl *MaterialController) List(c *fiber.Ctx) error {
	var rows []model.LearningMaterialModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("material_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Data materi pembelajaran berhasil diambil", dto.FromModelMaterials(rows))
}

// GET /api/learning-materials/:id
func (ctl *MaterialController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi pembelajaran tidak valid")
	}

	var row model.LearningMaterialModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi pembelajaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Data materi pembelajaran berhasil diambil", dto.FromModelMaterial(&row))
}

// POST /api/learning-materials — multipart: title, content, documentFile opsional
func (ctl *MaterialController) Create(c *fiber.Ctx) error {
	title, content, err := mergeMaterialForm(c, "", "")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	row := model.LearningMaterialModel{
		MaterialTitle:   title,
		MaterialContent: content,
	}

	if fh, err := helperOSS.GetFormFile(c, "documentFile"); err != nil {
		return helper.FromFiberError(c, err)
	} else if fh != nil {
		if err := helperOSS.MaterialDocumentRule.Validate(fh); err != nil {
			return helper.FromFiberError(c, err)
		}
		url, err := ctl.Blob.UploadToDir(c.Context(), helperOSS.DirMaterials, fh)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		row.MaterialDocumentURL = &url
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Materi pembelajaran berhasil dibuat", dto.FromModelMaterial(&row))
}

// PUT /api/learning-materials/:id — dokumen baru menggantikan yang lama,
// blob lama dihapus best effort.
func (ctl *MaterialController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var row model.LearningMaterialModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi pembelajaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	title, content, err := mergeMaterialForm(c, row.MaterialTitle, row.MaterialContent)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	row.MaterialTitle = title
	row.MaterialContent = content

	var oldURL string
	if fh, err := helperOSS.GetFormFile(c, "documentFile"); err != nil {
		return helper.FromFiberError(c, err)
	} else if fh != nil {
		if err := helperOSS.MaterialDocumentRule.Validate(fh); err != nil {
			return helper.FromFiberError(c, err)
		}
		url, err := ctl.Blob.UploadToDir(c.Context(), helperOSS.DirMaterials, fh)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if row.MaterialDocumentURL != nil {
			oldURL = *row.MaterialDocumentURL
		}
		row.MaterialDocumentURL = &url
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if oldURL != "" {
		if err := ctl.Blob.DeleteByPublicURL(c.Context(), oldURL); err != nil {
			log.Printf("[WARN] gagal menghapus dokumen lama materi: %v", err)
		}
	}

	return helper.JsonOK(c, "Materi pembelajaran berhasil diperbarui", dto.FromModelMaterial(&row))
}

// DELETE /api/learning-materials/:id — cascade ke quiz & attempt
func (ctl *MaterialController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var row model.LearningMaterialModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi pembelajaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if row.MaterialDocumentURL != nil {
		if err := ctl.Blob.DeleteByPublicURL(c.Context(), *row.MaterialDocumentURL); err != nil {
			log.Printf("[WARN] gagal menghapus dokumen materi: %v", err)
		}
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Materi pembelajaran berhasil dihapus")
}

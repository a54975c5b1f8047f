// file: internals/features/assignments/controller/assignment_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/assignments/dto"
	model "sekolahku_backend/internals/features/assignments/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	helperOSS "sekolahku_backend/internals/helpers/oss"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Blob      helperOSS.BlobService
}

func NewAssignmentController(db *gorm.DB, blob helperOSS.BlobService) *AssignmentController {
	return &AssignmentController{
		DB:        db,
		Validator: validator.New(),
		Blob:      blob,
	}
}

// Field form yang wajib ada di create dan update.
var assignmentRequiredFields = []string{"title", "type", "question", "dueDate", "grade"}

type assignmentForm struct {
	Title       string
	Description string
	Type        model.AssignmentType
	Question    string
	DueDate     time.Time
	Grade       string
}

// parseAssignmentForm membaca field multipart dengan daftar field eksplisit
// dan menolak yang hilang dengan pesan gabungan.
func parseAssignmentForm(c *fiber.Ctx) (*assignmentForm, error) {
	fields := map[string]string{}
	for _, name := range []string{"title", "description", "type", "question", "dueDate", "grade"} {
		fields[name] = strings.TrimSpace(c.FormValue(name))
	}

	var missing []string
	for _, name := range assignmentRequiredFields {
		if fields[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "))
	}

	typ := model.AssignmentType(fields["type"])
	if !typ.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid assignment type")
	}

	dueDate, err := time.Parse(time.RFC3339, fields["dueDate"])
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid due date format")
	}

	return &assignmentForm{
		Title:       fields["title"],
		Description: fields["description"],
		Type:        typ,
		Question:    fields["question"],
		DueDate:     dueDate,
		Grade:       fields["grade"],
	}, nil
}

// GET /api/assignments — urut waktu buat naik
func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	var rows []model.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("assignment_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Successfully retrieved assignments", dto.FromModelAssignments(rows))
}

// GET /api/assignments/:id
func (ctl *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	var row model.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Data tugas berhasil diambil", dto.FromModelAssignment(&row))
}

// POST /api/assignments — multipart; tipe file wajib menyertakan dokumen PDF
func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	form, err := parseAssignmentForm(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var documentURL *string
	if form.Type == model.AssignmentTypeFile {
		fh, err := helperOSS.GetFormFile(c, "documentFile")
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if fh == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Document file required for file type assignments")
		}
		if err := helperOSS.AssignmentDocumentRule.Validate(fh); err != nil {
			return helper.FromFiberError(c, err)
		}
		url, err := ctl.Blob.UploadToDir(c.Context(), helperOSS.DirAssignments+"/"+userID.String(), fh)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		documentURL = &url
	}

	row := model.AssignmentModel{
		AssignmentTitle:       form.Title,
		AssignmentType:        form.Type,
		AssignmentQuestion:    form.Question,
		AssignmentDocumentURL: documentURL,
		AssignmentDueDate:     form.DueDate,
		AssignmentGrade:       form.Grade,
		AssignmentAuthorID:    userID,
	}
	if form.Description != "" {
		row.AssignmentDescription = &form.Description
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Assignment created successfully", dto.FromModelAssignment(&row))
}

// PUT /api/assignments/:id — hanya penulis. Ganti file -> hapus blob lama,
// ganti tipe ke text -> dokumen dibuang, ganti ke file -> wajib kirim file.
func (ctl *AssignmentController) Update(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	var row model.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row.AssignmentAuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Unauthorized to update this assignment")
	}

	form, err := parseAssignmentForm(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	documentURL := row.AssignmentDocumentURL
	var staleURL *string

	if form.Type == model.AssignmentTypeFile {
		fh, err := helperOSS.GetFormFile(c, "documentFile")
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if row.AssignmentType == model.AssignmentTypeText && fh == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "File required when changing type to file")
		}
		if fh != nil {
			if err := helperOSS.AssignmentDocumentRule.Validate(fh); err != nil {
				return helper.FromFiberError(c, err)
			}
			url, err := ctl.Blob.UploadToDir(c.Context(), helperOSS.DirAssignments+"/"+userID.String(), fh)
			if err != nil {
				return helper.FromFiberError(c, err)
			}
			staleURL = row.AssignmentDocumentURL
			documentURL = &url
		}
	} else {
		// pindah ke text: dokumen lama dibuang
		staleURL = row.AssignmentDocumentURL
		documentURL = nil
	}

	row.AssignmentTitle = form.Title
	row.AssignmentDescription = nil
	if form.Description != "" {
		row.AssignmentDescription = &form.Description
	}
	row.AssignmentType = form.Type
	row.AssignmentQuestion = form.Question
	row.AssignmentDocumentURL = documentURL
	row.AssignmentDueDate = form.DueDate
	row.AssignmentGrade = form.Grade

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if staleURL != nil {
		if err := ctl.Blob.DeleteByPublicURL(c.Context(), *staleURL); err != nil {
			log.Printf("[WARN] gagal menghapus dokumen tugas lama: %v", err)
		}
	}

	return helper.JsonOK(c, "Assignment updated successfully", dto.FromModelAssignment(&row))
}

// DELETE /api/assignments/:id — cascade menghapus semua submission
func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	var row model.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if row.AssignmentDocumentURL != nil {
		if err := ctl.Blob.DeleteByPublicURL(c.Context(), *row.AssignmentDocumentURL); err != nil {
			log.Printf("[WARN] gagal menghapus dokumen tugas: %v", err)
		}
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Tugas berhasil dihapus")
}

// file: internals/features/assignments/service/submission_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/assignments/model"
	"sekolahku_backend/internals/constants"
	helperOSS "sekolahku_backend/internals/helpers/oss"
)

/* ==============================
   Store
============================== */

// SubmissionStore memisahkan akses data dari aturan bisnis submit
// supaya workflow bisa diuji tanpa database.
type SubmissionStore interface {
	FindAssignment(ctx context.Context, id uuid.UUID) (*model.AssignmentModel, error)
	FindSubmission(ctx context.Context, assignmentID, userID uuid.UUID) (*model.SubmissionModel, error)
	SaveSubmission(ctx context.Context, s *model.SubmissionModel) error
}

type GormSubmissionStore struct {
	DB *gorm.DB
}

func NewGormSubmissionStore(db *gorm.DB) *GormSubmissionStore {
	return &GormSubmissionStore{DB: db}
}

func (st *GormSubmissionStore) FindAssignment(ctx context.Context, id uuid.UUID) (*model.AssignmentModel, error) {
	var row model.AssignmentModel
	if err := st.DB.WithContext(ctx).First(&row, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (st *GormSubmissionStore) FindSubmission(ctx context.Context, assignmentID, userID uuid.UUID) (*model.SubmissionModel, error) {
	var row model.SubmissionModel
	if err := st.DB.WithContext(ctx).
		First(&row, "submission_assignment_id = ? AND submission_user_id = ?", assignmentID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (st *GormSubmissionStore) SaveSubmission(ctx context.Context, s *model.SubmissionModel) error {
	return st.DB.WithContext(ctx).Save(s).Error
}

/* ==============================
   Service
============================== */

type SubmissionService struct {
	Store SubmissionStore
	Blob  helperOSS.BlobService
	Now   func() time.Time
}

func NewSubmissionService(store SubmissionStore, blob helperOSS.BlobService) *SubmissionService {
	return &SubmissionService{Store: store, Blob: blob, Now: time.Now}
}

type SubmitInput struct {
	AssignmentID   uuid.UUID
	UserID         uuid.UUID
	Role           string
	File           *multipart.FileHeader
	SubmissionText string
}

type SubmitResult struct {
	Submission *model.SubmissionModel
	Created    bool // false = submit ulang menimpa baris lama
}

// Submit menjalankan workflow pengumpulan tugas: cek role, cek deadline,
// cocokkan payload dengan tipe assignment, upload file bila perlu, lalu
// upsert satu baris per (assignment, student).
func (s *SubmissionService) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if in.UserID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}
	if in.Role != constants.RoleStudent {
		return nil, fiber.NewError(fiber.StatusForbidden, "Only students can submit assignments")
	}

	assignment, err := s.Store.FindAssignment(ctx, in.AssignmentID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if assignment == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Assignment not found")
	}

	now := s.Now()
	if now.After(assignment.AssignmentDueDate) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Submission deadline has passed")
	}

	// payload harus sesuai tipe assignment
	text := strings.TrimSpace(in.SubmissionText)
	switch assignment.AssignmentType {
	case model.AssignmentTypeFile:
		if in.File == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "File required for file type assignment")
		}
	case model.AssignmentTypeText:
		if text == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Text submission cannot be empty")
		}
	default:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Invalid assignment type")
	}

	var fileURL *string
	if assignment.AssignmentType == model.AssignmentTypeFile {
		if err := helperOSS.SubmissionFileRule.Validate(in.File); err != nil {
			return nil, err
		}
		dir := fmt.Sprintf("%s/%s/%s", helperOSS.DirSubmissions, in.UserID, in.AssignmentID)
		url, err := s.Blob.UploadToDir(ctx, dir, in.File)
		if err != nil {
			return nil, err
		}
		fileURL = &url
	}

	existing, err := s.Store.FindSubmission(ctx, in.AssignmentID, in.UserID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Cabang late dipertahankan walau guard deadline di atas membuatnya tidak
	// tercapai pada urutan sekarang; kebijakan grace period di masa depan
	// mungkin mengizinkan submit terlambat.
	status := model.SubmissionStatusSubmitted
	if now.After(assignment.AssignmentDueDate) {
		status = model.SubmissionStatusLate
	}

	if existing != nil {
		oldFileURL := existing.SubmissionFileURL

		existing.SubmissionFileURL = fileURL
		existing.SubmissionText = nil
		if assignment.AssignmentType == model.AssignmentTypeText {
			existing.SubmissionText = &text
		}
		existing.SubmissionStatus = status
		existing.SubmissionUpdatedAt = now

		if err := s.Store.SaveSubmission(ctx, existing); err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		// file lama dibersihkan best effort setelah baris tersimpan,
		// termasuk saat submit ulang beralih ke payload teks
		if oldFileURL != nil && (fileURL == nil || *oldFileURL != *fileURL) {
			if err := s.Blob.DeleteByPublicURL(ctx, *oldFileURL); err != nil {
				log.Printf("[WARN] gagal menghapus file submission lama: %v", err)
			}
		}
		return &SubmitResult{Submission: existing, Created: false}, nil
	}

	submission := &model.SubmissionModel{
		SubmissionAssignmentID: in.AssignmentID,
		SubmissionUserID:       in.UserID,
		SubmissionFileURL:      fileURL,
		SubmissionStatus:       status,
		SubmissionCreatedAt:    now,
		SubmissionUpdatedAt:    now,
	}
	if assignment.AssignmentType == model.AssignmentTypeText {
		submission.SubmissionText = &text
	}
	if err := s.Store.SaveSubmission(ctx, submission); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &SubmitResult{Submission: submission, Created: true}, nil
}

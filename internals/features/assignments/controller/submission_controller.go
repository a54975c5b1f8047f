// file: internals/features/assignments/controller/submission_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/assignments/dto"
	model "sekolahku_backend/internals/features/assignments/model"
	service "sekolahku_backend/internals/features/assignments/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	helperOSS "sekolahku_backend/internals/helpers/oss"
)

type SubmissionController struct {
	DB          *gorm.DB
	Validator   *validator.Validate
	Submissions *service.SubmissionService
}

func NewSubmissionController(db *gorm.DB, blob helperOSS.BlobService) *SubmissionController {
	return &SubmissionController{
		DB:          db,
		Validator:   validator.New(),
		Submissions: service.NewSubmissionService(service.NewGormSubmissionStore(db), blob),
	}
}

// POST /api/assignments/:id/submit — multipart: file atau submissionText
func (ctl *SubmissionController) Submit(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	assignmentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	fh, err := helperOSS.GetFormFile(c, "file")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result, err := ctl.Submissions.Submit(c.Context(), service.SubmitInput{
		AssignmentID:   assignmentID,
		UserID:         userID,
		Role:           helperAuth.GetUserRoleFromToken(c),
		File:           fh,
		SubmissionText: c.FormValue("submissionText"),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Submission updated successfully"
	if result.Created {
		msg = "Submission created successfully"
	}
	return helper.JsonOK(c, msg, dto.FromModelSubmission(result.Submission))
}

// GET /api/assignments/:id/submissions — daftar untuk dinilai admin
func (ctl *SubmissionController) ListByAssignment(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	var rows []model.SubmissionModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("submission_assignment_id = ?", assignmentID).
		Order("submission_updated_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Successfully retrieved submissions", dto.FromModelSubmissions(rows))
}

// PUT /api/submissions/:id/grade — admin memberi nilai, status jadi graded
func (ctl *SubmissionController) Grade(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission ID")
	}

	var req dto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.Score == nil || *req.Score < 0 || *req.Score > 100 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Score must be between 0 and 100")
	}

	var row model.SubmissionModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "submission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	row.SubmissionScore = req.Score
	row.SubmissionFeedback = nil
	if fb := strings.TrimSpace(req.Feedback); fb != "" {
		row.SubmissionFeedback = &fb
	}
	row.SubmissionStatus = model.SubmissionStatusGraded

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Submission graded successfully", dto.FromModelSubmission(&row))
}

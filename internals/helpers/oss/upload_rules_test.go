package helper

import (
	"mime/multipart"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func header(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestUploadRuleValidate(t *testing.T) {
	tests := []struct {
		name     string
		rule     UploadRule
		fh       *multipart.FileHeader
		wantCode int
		wantMsg  string
	}{
		{name: "materi pdf ok", rule: MaterialDocumentRule, fh: header("bab1.pdf", MiB)},
		{name: "materi pdf huruf besar ok", rule: MaterialDocumentRule, fh: header("BAB1.PDF", MiB)},
		{
			name: "materi docx ditolak", rule: MaterialDocumentRule, fh: header("bab1.docx", MiB),
			wantCode: fiber.StatusBadRequest, wantMsg: "Hanya file PDF yang diperbolehkan",
		},
		{
			name: "materi lebih dari 2MB", rule: MaterialDocumentRule, fh: header("bab1.pdf", 2*MiB+1),
			wantCode: fiber.StatusRequestEntityTooLarge, wantMsg: "Ukuran file melebihi batas 2MB",
		},
		{
			name: "assignment lebih dari 2MB", rule: AssignmentDocumentRule, fh: header("tugas.pdf", 3*MiB),
			wantCode: fiber.StatusRequestEntityTooLarge, wantMsg: "File size exceeds 2MB limit",
		},
		{name: "submission docx ok", rule: SubmissionFileRule, fh: header("jawaban.docx", 4*MiB)},
		{
			name: "submission zip ditolak", rule: SubmissionFileRule, fh: header("jawaban.zip", MiB),
			wantCode: fiber.StatusBadRequest, wantMsg: "Only PDF, DOC, and DOCX files are allowed",
		},
		{
			name: "submission lebih dari 5MB", rule: SubmissionFileRule, fh: header("jawaban.pdf", 5*MiB+1),
			wantCode: fiber.StatusRequestEntityTooLarge, wantMsg: "File size exceeds 5MB limit",
		},
		{
			name: "file nil", rule: SubmissionFileRule, fh: nil,
			wantCode: fiber.StatusBadRequest, wantMsg: "File tidak ditemukan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate(tt.fh)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			fe, ok := err.(*fiber.Error)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, fe.Code)
			assert.Equal(t, tt.wantMsg, fe.Message)
		})
	}
}

package helper

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UploadRule mendeklarasikan batasan file per endpoint: ekstensi yang
// diizinkan, ukuran maksimum, dan pesan penolakan yang dipakai endpoint itu.
type UploadRule struct {
	AllowedExts []string // tanpa titik, lowercase
	MaxBytes    int64
	TypeErrMsg  string // 400
	SizeErrMsg  string // 413
}

const (
	MiB = 1 << 20
)

// Prefix direktori per jenis file (pengganti bucket terpisah).
const (
	DirAssignments = "assignments"
	DirSubmissions = "submissions"
	DirMaterials   = "learning-materials"
)

var (
	// Dokumen tugas (assignment): PDF, maksimum 2 MiB.
	AssignmentDocumentRule = UploadRule{
		AllowedExts: []string{"pdf"},
		MaxBytes:    2 * MiB,
		TypeErrMsg:  "Only PDF files are allowed",
		SizeErrMsg:  "File size exceeds 2MB limit",
	}

	// Dokumen materi pembelajaran: PDF, maksimum 2 MiB.
	MaterialDocumentRule = UploadRule{
		AllowedExts: []string{"pdf"},
		MaxBytes:    2 * MiB,
		TypeErrMsg:  "Hanya file PDF yang diperbolehkan",
		SizeErrMsg:  "Ukuran file melebihi batas 2MB",
	}

	// File jawaban siswa: pdf/doc/docx, maksimum 5 MiB.
	SubmissionFileRule = UploadRule{
		AllowedExts: []string{"pdf", "doc", "docx"},
		MaxBytes:    5 * MiB,
		TypeErrMsg:  "Only PDF, DOC, and DOCX files are allowed",
		SizeErrMsg:  "File size exceeds 5MB limit",
	}
)

// Validate menolak file yang ekstensinya tidak terdaftar (400) atau yang
// melebihi batas ukuran (413). Ukuran dicek dari header multipart.
func (r UploadRule) Validate(fh *multipart.FileHeader) error {
	if fh == nil {
		return fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
	allowed := false
	for _, e := range r.AllowedExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return fiber.NewError(fiber.StatusBadRequest, r.TypeErrMsg)
	}
	if fh.Size > r.MaxBytes {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, r.SizeErrMsg)
	}
	return nil
}

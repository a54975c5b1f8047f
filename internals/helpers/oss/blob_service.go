package helper

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller dan
service. Satu bucket OSS, "bucket" logis (assignments, submissions,
learning-materials) dipetakan ke prefix direktori object key.
*/
type BlobService interface {
	// UploadToDir meng-upload file ke subdir dan mengembalikan public URL-nya.
	UploadToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)

	// DeleteByPublicURL menghapus object berdasarkan public URL yang tersimpan di DB.
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// --------------------------------------------------
// Implementasi berbasis Aliyun OSS
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

// NewOSSBlobServiceFromEnv membuat instance dari ENV. prefix opsional (contoh: "uploads/").
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	key, _, err := b.svc.UploadFromFormFileToDir(ctx, dir, fh)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("File upload failed: %v", err))
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "URL kosong")
	}
	if err := b.svc.DeleteByPublicURL(ctx, publicURL); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Gagal hapus object: %v", err))
	}
	return nil
}

// IsMultipart menilai request multipart/form-data.
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// GetFormFile mengambil file dari field form tertentu.
// Jika field tidak ada, kembalikan (nil, nil) supaya controller bisa fallback.
func GetFormFile(c *fiber.Ctx, fieldName string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Gunakan multipart/form-data")
	}
	if fh, err := c.FormFile(fieldName); err == nil && fh != nil {
		return fh, nil
	}
	return nil, nil
}

// --------------------------------------------------
// Mock untuk unit test
// --------------------------------------------------

type MockBlobService struct {
	UploadToDirFn       func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error)
	DeleteByPublicURLFn func(ctx context.Context, publicURL string) error
}

func (m *MockBlobService) UploadToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if m.UploadToDirFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadToDirFn(ctx, dir, fh)
}

func (m *MockBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if m.DeleteByPublicURLFn == nil {
		return errors.New("not implemented")
	}
	return m.DeleteByPublicURLFn(ctx, publicURL)
}

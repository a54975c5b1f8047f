package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

// Envelope seragam untuk semua endpoint: { statusCode, message, data? }.

// ✅ Success Response tanpa custom code (default 200)
func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response untuk create (201)
func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusCreated, message, data)
}

// ✅ Success Response dengan custom code
func JsonWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	body := fiber.Map{
		"statusCode": code,
		"message":    message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

// ✅ Success Response tanpa data (delete, update tanpa body)
func JsonMessage(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"statusCode": code,
		"message":    message,
	})
}

// ✅ Error Response sederhana
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"statusCode": code,
		"message":    message,
	})
}

// FromFiberError meneruskan *fiber.Error (dari service/middleware) ke envelope.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// ✅ Khusus error validasi (validator.v10) — fail fast, ambil pelanggaran pertama
func JsonValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return JsonError(c, fiber.StatusBadRequest, fe.Field()+" tidak valid ("+fe.Tag()+")")
	}
	return JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
}

// IsUniqueViolation mengenali pelanggaran unique constraint Postgres (23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	if err == nil {
		return false
	}
	// driver pgx menyisipkan SQLSTATE di pesan
	le := strings.ToLower(err.Error())
	return strings.Contains(le, "23505") ||
		strings.Contains(le, "duplicate key") ||
		strings.Contains(le, "unique constraint")
}

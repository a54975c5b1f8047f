package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func doRequest(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJsonEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return JsonOK(c, "Berhasil", fiber.Map{"id": "abc"})
	})
	app.Get("/created", func(c *fiber.Ctx) error {
		return JsonCreated(c, "Dibuat", nil)
	})
	app.Get("/message", func(c *fiber.Ctx) error {
		return JsonMessage(c, fiber.StatusOK, "Dihapus")
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "Tidak ditemukan")
	})
	app.Get("/fiber-error", func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusForbidden, "Akses ditolak"))
	})

	code, body := doRequest(t, app, "/ok")
	assert.Equal(t, fiber.StatusOK, code)
	assert.EqualValues(t, 200, body["statusCode"])
	assert.Equal(t, "Berhasil", body["message"])
	assert.Equal(t, map[string]any{"id": "abc"}, body["data"])

	code, body = doRequest(t, app, "/created")
	assert.Equal(t, fiber.StatusCreated, code)
	assert.EqualValues(t, 201, body["statusCode"])
	_, hasData := body["data"]
	assert.False(t, hasData, "data nil tidak boleh muncul di envelope")

	code, body = doRequest(t, app, "/message")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Dihapus", body["message"])

	code, body = doRequest(t, app, "/error")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.EqualValues(t, 404, body["statusCode"])
	assert.Equal(t, "Tidak ditemukan", body["message"])

	code, body = doRequest(t, app, "/fiber-error")
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Akses ditolak", body["message"])
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(assertError("record not found")))
	assert.True(t, IsUniqueViolation(assertError(`ERROR: duplicate key value violates unique constraint "users_user_username_key" (SQLSTATE 23505)`)))
}

type assertError string

func (e assertError) Error() string { return string(e) }

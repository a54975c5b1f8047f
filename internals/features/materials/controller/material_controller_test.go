package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	helper "sekolahku_backend/internals/helpers"
)

// newMergeApp mengekspos mergeMaterialForm lewat satu handler uji.
func newMergeApp(oldTitle, oldContent string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Post("/merge", func(c *fiber.Ctx) error {
		title, content, err := mergeMaterialForm(c, oldTitle, oldContent)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		return helper.JsonOK(c, "ok", fiber.Map{"title": title, "content": content})
	})
	return app
}

func postForm(t *testing.T, app *fiber.App, fields map[string]string) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	assert.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/merge", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestMergeMaterialForm(t *testing.T) {
	tests := []struct {
		name        string
		oldTitle    string
		oldContent  string
		fields      map[string]string
		wantCode    int
		wantTitle   string
		wantContent string
	}{
		{
			name:     "create tanpa field wajib",
			fields:   map[string]string{},
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "create hanya judul",
			fields:   map[string]string{"title": "Pecahan"},
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:        "create lengkap",
			fields:      map[string]string{"title": "Pecahan", "content": "Materi pecahan dasar"},
			wantCode:    fiber.StatusOK,
			wantTitle:   "Pecahan",
			wantContent: "Materi pecahan dasar",
		},
		{
			name:        "update sebagian memakai nilai lama",
			oldTitle:    "Pecahan",
			oldContent:  "Materi pecahan dasar",
			fields:      map[string]string{"content": "Materi pecahan lanjutan"},
			wantCode:    fiber.StatusOK,
			wantTitle:   "Pecahan",
			wantContent: "Materi pecahan lanjutan",
		},
		{
			name:     "update spasi saja tetap ditolak",
			fields:   map[string]string{"title": "   ", "content": "   "},
			wantCode: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newMergeApp(tt.oldTitle, tt.oldContent)
			code, body := postForm(t, app, tt.fields)
			assert.Equal(t, tt.wantCode, code)

			if tt.wantCode == fiber.StatusOK {
				data := body["data"].(map[string]any)
				assert.Equal(t, tt.wantTitle, data["title"])
				assert.Equal(t, tt.wantContent, data["content"])
			} else {
				assert.Equal(t, "Judul dan konten materi harus diisi", body["message"])
			}
		})
	}
}

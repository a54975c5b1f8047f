package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	model "sekolahku_backend/internals/features/users/model"
	service "sekolahku_backend/internals/features/users/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/configs"
)

type fakeStudentStore struct {
	rows      map[uuid.UUID]*model.UserModel
	saveCalls int
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{rows: map[uuid.UUID]*model.UserModel{}}
}

func (f *fakeStudentStore) ListStudents(ctx context.Context) ([]model.UserModel, error) {
	out := make([]model.UserModel, 0, len(f.rows))
	for _, r := range f.rows {
		if r.UserRole == model.UserRoleStudent {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) FindStudent(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	r, ok := f.rows[id]
	if !ok || r.UserRole != model.UserRoleStudent {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeStudentStore) CountUsername(ctx context.Context, username string, excludeID uuid.UUID) (int64, error) {
	var n int64
	for id, r := range f.rows {
		if r.UserUsername == username && id != excludeID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStudentStore) CreateStudent(ctx context.Context, row *model.UserModel) error {
	row.UserID = uuid.New()
	cp := *row
	f.rows[row.UserID] = &cp
	return nil
}

func (f *fakeStudentStore) SaveStudent(ctx context.Context, row *model.UserModel) error {
	f.saveCalls++
	cp := *row
	f.rows[row.UserID] = &cp
	return nil
}

func (f *fakeStudentStore) DeleteStudent(ctx context.Context, row *model.UserModel) error {
	delete(f.rows, row.UserID)
	return nil
}

func newStudentApp(store service.StudentStore) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	ctl := &StudentController{
		Store:     store,
		Validator: validator.New(),
		Accounts:  service.NewAccountService(nil, configs.AppConfig{AppDomain: "sekolahku.id"}),
	}
	app.Post("/api/students", ctl.Create)
	app.Put("/api/students/:id", ctl.Update)
	return app
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	assert.NoError(t, err)
	return bytes.NewReader(raw)
}

func decodeEnvelope(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(body)
	assert.NoError(t, err)
	var out map[string]any
	assert.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func seedStudent(store *fakeStudentStore, username string) *model.UserModel {
	row := &model.UserModel{
		UserID:       uuid.New(),
		UserFullname: "Siswa " + username,
		UserUsername: username,
		UserEmail:    username + "@sekolahku.id",
		UserRole:     model.UserRoleStudent,
		UserGrade:    "IV",
	}
	store.rows[row.UserID] = row
	return row
}

func TestStudentUpdate_UsernameTakenByOther(t *testing.T) {
	store := newFakeStudentStore()
	target := seedStudent(store, "budi")
	seedStudent(store, "sari")

	app := newStudentApp(store)
	req := httptest.NewRequest("PUT", "/api/students/"+target.UserID.String(),
		jsonBody(t, fiber.Map{"username": "sari"}))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body := decodeEnvelope(t, resp.Body)
	assert.Equal(t, "Username sudah digunakan oleh siswa lain", body["message"])
	assert.Zero(t, store.saveCalls)
	// data lama tidak berubah
	assert.Equal(t, "budi", store.rows[target.UserID].UserUsername)
}

func TestStudentUpdate_UsernameChanged(t *testing.T) {
	store := newFakeStudentStore()
	target := seedStudent(store, "budi")

	app := newStudentApp(store)
	req := httptest.NewRequest("PUT", "/api/students/"+target.UserID.String(),
		jsonBody(t, fiber.Map{"username": "budi2"}))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, store.saveCalls)
	assert.Equal(t, "budi2", store.rows[target.UserID].UserUsername)
	// email login ikut disintesis ulang
	assert.Equal(t, "budi2@sekolahku.id", store.rows[target.UserID].UserEmail)
}

func TestStudentCreate_DuplicateUsername(t *testing.T) {
	store := newFakeStudentStore()
	seedStudent(store, "budi")

	app := newStudentApp(store)
	req := httptest.NewRequest("POST", "/api/students",
		jsonBody(t, fiber.Map{
			"fullname": "Budi Baru",
			"username": "budi",
			"password": "rahasia123",
			"grade":    "IV",
		}))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body := decodeEnvelope(t, resp.Body)
	assert.Equal(t, "Username sudah terdaftar", body["message"])
	assert.Len(t, store.rows, 1)
}

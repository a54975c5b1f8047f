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

	model "sekolahku_backend/internals/features/discussions/model"
	service "sekolahku_backend/internals/features/discussions/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type fakeDiscussionStore struct {
	users       map[uuid.UUID]bool
	discussions map[uuid.UUID]*model.DiscussionModel
	comments    map[uuid.UUID]*model.CommentModel
}

func newFakeDiscussionStore() *fakeDiscussionStore {
	return &fakeDiscussionStore{
		users:       map[uuid.UUID]bool{},
		discussions: map[uuid.UUID]*model.DiscussionModel{},
		comments:    map[uuid.UUID]*model.CommentModel{},
	}
}

func (f *fakeDiscussionStore) ListDiscussions(ctx context.Context) ([]model.DiscussionModel, error) {
	out := make([]model.DiscussionModel, 0, len(f.discussions))
	for _, d := range f.discussions {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDiscussionStore) AuthorExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return f.users[userID], nil
}

func (f *fakeDiscussionStore) DiscussionExists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.discussions[id]
	return ok, nil
}

func (f *fakeDiscussionStore) CreateDiscussion(ctx context.Context, row *model.DiscussionModel) error {
	row.DiscussionID = uuid.New()
	cp := *row
	f.discussions[row.DiscussionID] = &cp
	return nil
}

func (f *fakeDiscussionStore) FindDiscussion(ctx context.Context, id uuid.UUID) (*model.DiscussionModel, error) {
	d, ok := f.discussions[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDiscussionStore) SaveDiscussion(ctx context.Context, row *model.DiscussionModel) error {
	cp := *row
	f.discussions[row.DiscussionID] = &cp
	return nil
}

func (f *fakeDiscussionStore) DeleteDiscussion(ctx context.Context, row *model.DiscussionModel) error {
	delete(f.discussions, row.DiscussionID)
	return nil
}

func (f *fakeDiscussionStore) CreateComment(ctx context.Context, row *model.CommentModel) error {
	row.CommentID = uuid.New()
	cp := *row
	f.comments[row.CommentID] = &cp
	return nil
}

func (f *fakeDiscussionStore) FindComment(ctx context.Context, id uuid.UUID) (*model.CommentModel, error) {
	cmt, ok := f.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *cmt
	return &cp, nil
}

func (f *fakeDiscussionStore) SaveComment(ctx context.Context, row *model.CommentModel) error {
	cp := *row
	f.comments[row.CommentID] = &cp
	return nil
}

func (f *fakeDiscussionStore) DeleteComment(ctx context.Context, row *model.CommentModel) error {
	delete(f.comments, row.CommentID)
	return nil
}

// asIdentity meniru hasil middleware auth tanpa token sungguhan.
func asIdentity(userID uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, userID.String())
		c.Locals(helperAuth.LocRole, "student")
		return c.Next()
	}
}

func newDiscussionApp(store service.DiscussionStore, userID uuid.UUID) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Use(asIdentity(userID))

	disc := &DiscussionController{Store: store, Validator: validator.New()}
	comment := &CommentController{Store: store, Validator: validator.New()}
	app.Post("/api/discussions", disc.Create)
	app.Post("/api/comments", comment.Create)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(rawBody, &body))
	return resp.StatusCode, body
}

func TestCommentCreate_DiscussionIDValidation(t *testing.T) {
	userID := uuid.New()
	store := newFakeDiscussionStore()
	store.users[userID] = true

	knownID := uuid.New()
	store.discussions[knownID] = &model.DiscussionModel{
		DiscussionID:       knownID,
		DiscussionContent:  "diskusi awal",
		DiscussionAuthorID: userID,
	}

	tests := []struct {
		name         string
		discussionID string
		wantCode     int
		wantMessage  string
	}{
		{
			name:         "discussionId kosong",
			discussionID: "",
			wantCode:     fiber.StatusBadRequest,
			wantMessage:  "discussionId harus disertakan",
		},
		{
			name:         "discussionId bukan uuid",
			discussionID: "bukan-uuid",
			wantCode:     fiber.StatusBadRequest,
			wantMessage:  "discussionId harus disertakan",
		},
		{
			name:         "diskusi tidak ada",
			discussionID: uuid.NewString(),
			wantCode:     fiber.StatusNotFound,
			wantMessage:  "Diskusi tidak ditemukan",
		},
		{
			name:         "diskusi ada",
			discussionID: knownID.String(),
			wantCode:     fiber.StatusCreated,
			wantMessage:  "Komentar berhasil dibuat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newDiscussionApp(store, userID)
			code, body := postJSON(t, app, "/api/comments", fiber.Map{
				"discussionId": tt.discussionID,
				"content":      "komentar uji",
			})
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}

	// hanya skenario valid yang menambah baris
	assert.Len(t, store.comments, 1)
}

func TestDiscussionCreate_AuthorRowMissing(t *testing.T) {
	staleID := uuid.New()
	store := newFakeDiscussionStore()

	app := newDiscussionApp(store, staleID)
	code, body := postJSON(t, app, "/api/discussions", fiber.Map{"content": "halo semua"})

	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "User tidak ditemukan", body["message"])
	assert.Empty(t, store.discussions)
}

func TestDiscussionCreate_OK(t *testing.T) {
	userID := uuid.New()
	store := newFakeDiscussionStore()
	store.users[userID] = true

	app := newDiscussionApp(store, userID)
	code, _ := postJSON(t, app, "/api/discussions", fiber.Map{"content": "halo semua"})

	assert.Equal(t, fiber.StatusCreated, code)
	assert.Len(t, store.discussions, 1)
	for _, d := range store.discussions {
		assert.Equal(t, "halo semua", d.DiscussionContent)
		assert.Equal(t, userID, d.DiscussionAuthorID)
	}
}

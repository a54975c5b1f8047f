package service

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	model "sekolahku_backend/internals/features/assignments/model"
	"sekolahku_backend/internals/constants"
	helperOSS "sekolahku_backend/internals/helpers/oss"
)

type fakeStore struct {
	assignments map[uuid.UUID]*model.AssignmentModel
	submissions []*model.SubmissionModel
	saveCalls   int
}

func newFakeStore(assignments ...*model.AssignmentModel) *fakeStore {
	st := &fakeStore{assignments: map[uuid.UUID]*model.AssignmentModel{}}
	for _, a := range assignments {
		st.assignments[a.AssignmentID] = a
	}
	return st
}

func (st *fakeStore) FindAssignment(_ context.Context, id uuid.UUID) (*model.AssignmentModel, error) {
	return st.assignments[id], nil
}

func (st *fakeStore) FindSubmission(_ context.Context, assignmentID, userID uuid.UUID) (*model.SubmissionModel, error) {
	for _, s := range st.submissions {
		if s.SubmissionAssignmentID == assignmentID && s.SubmissionUserID == userID {
			return s, nil
		}
	}
	return nil, nil
}

func (st *fakeStore) SaveSubmission(_ context.Context, s *model.SubmissionModel) error {
	st.saveCalls++
	if s.SubmissionID == uuid.Nil {
		s.SubmissionID = uuid.New()
		st.submissions = append(st.submissions, s)
	}
	return nil
}

func pdfFile(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	if !ok {
		t.Fatalf("expected *fiber.Error, got %T: %v", err, err)
	}
	return fe.Code
}

func newTestService(st SubmissionStore, blob helperOSS.BlobService, now time.Time) *SubmissionService {
	svc := NewSubmissionService(st, blob)
	svc.Now = func() time.Time { return now }
	return svc
}

func TestSubmit_Rejections(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	studentID := uuid.New()

	fileAsg := &model.AssignmentModel{
		AssignmentID:      uuid.New(),
		AssignmentType:    model.AssignmentTypeFile,
		AssignmentDueDate: now.Add(24 * time.Hour),
	}
	textAsg := &model.AssignmentModel{
		AssignmentID:      uuid.New(),
		AssignmentType:    model.AssignmentTypeText,
		AssignmentDueDate: now.Add(24 * time.Hour),
	}
	pastAsg := &model.AssignmentModel{
		AssignmentID:      uuid.New(),
		AssignmentType:    model.AssignmentTypeText,
		AssignmentDueDate: now.Add(-time.Minute),
	}

	tests := []struct {
		name     string
		input    SubmitInput
		wantCode int
		wantMsg  string
	}{
		{
			name:     "tanpa identitas",
			input:    SubmitInput{AssignmentID: textAsg.AssignmentID, Role: constants.RoleStudent},
			wantCode: fiber.StatusUnauthorized,
			wantMsg:  "Authentication required",
		},
		{
			name:     "bukan siswa",
			input:    SubmitInput{AssignmentID: textAsg.AssignmentID, UserID: studentID, Role: constants.RoleAdmin},
			wantCode: fiber.StatusForbidden,
			wantMsg:  "Only students can submit assignments",
		},
		{
			name:     "assignment tidak ada",
			input:    SubmitInput{AssignmentID: uuid.New(), UserID: studentID, Role: constants.RoleStudent, SubmissionText: "jawaban"},
			wantCode: fiber.StatusNotFound,
			wantMsg:  "Assignment not found",
		},
		{
			name:     "lewat deadline",
			input:    SubmitInput{AssignmentID: pastAsg.AssignmentID, UserID: studentID, Role: constants.RoleStudent, SubmissionText: "jawaban"},
			wantCode: fiber.StatusBadRequest,
			wantMsg:  "Submission deadline has passed",
		},
		{
			name:     "tipe file tanpa file",
			input:    SubmitInput{AssignmentID: fileAsg.AssignmentID, UserID: studentID, Role: constants.RoleStudent},
			wantCode: fiber.StatusBadRequest,
			wantMsg:  "File required for file type assignment",
		},
		{
			name:     "tipe text dengan teks kosong",
			input:    SubmitInput{AssignmentID: textAsg.AssignmentID, UserID: studentID, Role: constants.RoleStudent, SubmissionText: "   "},
			wantCode: fiber.StatusBadRequest,
			wantMsg:  "Text submission cannot be empty",
		},
		{
			name: "ekstensi file tidak diizinkan",
			input: SubmitInput{
				AssignmentID: fileAsg.AssignmentID, UserID: studentID, Role: constants.RoleStudent,
				File: pdfFile("jawaban.exe", 1024),
			},
			wantCode: fiber.StatusBadRequest,
			wantMsg:  "Only PDF, DOC, and DOCX files are allowed",
		},
		{
			name: "file melebihi 5MB",
			input: SubmitInput{
				AssignmentID: fileAsg.AssignmentID, UserID: studentID, Role: constants.RoleStudent,
				File: pdfFile("jawaban.pdf", 6*helperOSS.MiB),
			},
			wantCode: fiber.StatusRequestEntityTooLarge,
			wantMsg:  "File size exceeds 5MB limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newFakeStore(fileAsg, textAsg, pastAsg)
			svc := newTestService(st, &helperOSS.MockBlobService{}, now)

			_, err := svc.Submit(context.Background(), tt.input)

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, fiberCode(t, err))
			assert.Equal(t, tt.wantMsg, err.(*fiber.Error).Message)
			assert.Zero(t, st.saveCalls, "penolakan tidak boleh menulis baris")
		})
	}
}

func TestSubmit_UpsertKeepsOneRowPerPair(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	studentID := uuid.New()
	asg := &model.AssignmentModel{
		AssignmentID:      uuid.New(),
		AssignmentType:    model.AssignmentTypeText,
		AssignmentDueDate: now.Add(24 * time.Hour),
	}
	st := newFakeStore(asg)
	svc := newTestService(st, &helperOSS.MockBlobService{}, now)

	in := SubmitInput{
		AssignmentID: asg.AssignmentID, UserID: studentID, Role: constants.RoleStudent,
		SubmissionText: "jawaban pertama",
	}
	res1, err := svc.Submit(context.Background(), in)
	assert.NoError(t, err)
	assert.True(t, res1.Created)
	assert.Equal(t, model.SubmissionStatusSubmitted, res1.Submission.SubmissionStatus)

	in.SubmissionText = "jawaban revisi"
	res2, err := svc.Submit(context.Background(), in)
	assert.NoError(t, err)
	assert.False(t, res2.Created)

	// tetap satu baris, isi mengikuti submit terakhir
	assert.Len(t, st.submissions, 1)
	assert.Equal(t, res1.Submission.SubmissionID, res2.Submission.SubmissionID)
	assert.Equal(t, "jawaban revisi", *st.submissions[0].SubmissionText)
	assert.Nil(t, st.submissions[0].SubmissionFileURL)
}

func TestSubmit_FileUploadAndOldBlobCleanup(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	studentID := uuid.New()
	asg := &model.AssignmentModel{
		AssignmentID:      uuid.New(),
		AssignmentType:    model.AssignmentTypeFile,
		AssignmentDueDate: now.Add(24 * time.Hour),
	}
	st := newFakeStore(asg)

	var uploadedDirs []string
	var deletedURLs []string
	uploads := 0
	blob := &helperOSS.MockBlobService{
		UploadToDirFn: func(_ context.Context, dir string, fh *multipart.FileHeader) (string, error) {
			uploads++
			uploadedDirs = append(uploadedDirs, dir)
			return "https://cdn.example.com/" + dir + "/v" + fh.Filename, nil
		},
		DeleteByPublicURLFn: func(_ context.Context, url string) error {
			deletedURLs = append(deletedURLs, url)
			return nil
		},
	}
	svc := newTestService(st, blob, now)

	in := SubmitInput{
		AssignmentID: asg.AssignmentID, UserID: studentID, Role: constants.RoleStudent,
		File: pdfFile("tugas1.pdf", 1024),
	}
	res1, err := svc.Submit(context.Background(), in)
	assert.NoError(t, err)
	assert.NotNil(t, res1.Submission.SubmissionFileURL)

	// key submission dipisah per siswa per assignment
	assert.Contains(t, uploadedDirs[0], "submissions/"+studentID.String()+"/"+asg.AssignmentID.String())

	in.File = pdfFile("tugas1-revisi.pdf", 2048)
	res2, err := svc.Submit(context.Background(), in)
	assert.NoError(t, err)

	assert.Equal(t, 2, uploads)
	assert.Len(t, st.submissions, 1)
	// blob lama dibersihkan setelah ditimpa
	assert.Equal(t, []string{*res1.Submission.SubmissionFileURL}, deletedURLs)
	assert.NotEqual(t, *res1.Submission.SubmissionFileURL, *res2.Submission.SubmissionFileURL)
}

func TestSubmit_StatusComputedFromDueDate(t *testing.T) {
	// Guard deadline menolak lebih dulu, jadi jalur normal selalu submitted.
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	asg := &model.AssignmentModel{
		AssignmentID:      uuid.New(),
		AssignmentType:    model.AssignmentTypeText,
		AssignmentDueDate: now, // tepat di deadline masih diterima
	}
	st := newFakeStore(asg)
	svc := newTestService(st, &helperOSS.MockBlobService{}, now)

	res, err := svc.Submit(context.Background(), SubmitInput{
		AssignmentID: asg.AssignmentID, UserID: uuid.New(), Role: constants.RoleStudent,
		SubmissionText: "tepat waktu",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusSubmitted, res.Submission.SubmissionStatus)
}

func TestSubmit_OldBlobCleanupOnSwitchToText(t *testing.T) {
	// Tipe assignment berubah file -> text: submit ulang teks tetap
	// membersihkan file lama, tidak ada blob yatim.
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	studentID := uuid.New()
	asg := &model.AssignmentModel{
		AssignmentID:      uuid.New(),
		AssignmentType:    model.AssignmentTypeText,
		AssignmentDueDate: now.Add(24 * time.Hour),
	}

	oldURL := "https://bucket.example.com/submissions/lama.pdf"
	st := newFakeStore(asg)
	st.submissions = append(st.submissions, &model.SubmissionModel{
		SubmissionID:           uuid.New(),
		SubmissionAssignmentID: asg.AssignmentID,
		SubmissionUserID:       studentID,
		SubmissionFileURL:      &oldURL,
		SubmissionStatus:       model.SubmissionStatusSubmitted,
	})

	var deletedURLs []string
	blob := &helperOSS.MockBlobService{
		DeleteByPublicURLFn: func(_ context.Context, url string) error {
			deletedURLs = append(deletedURLs, url)
			return nil
		},
	}
	svc := newTestService(st, blob, now)

	res, err := svc.Submit(context.Background(), SubmitInput{
		AssignmentID: asg.AssignmentID, UserID: studentID, Role: constants.RoleStudent,
		SubmissionText: "jawaban teks",
	})
	assert.NoError(t, err)
	assert.False(t, res.Created)
	assert.Nil(t, res.Submission.SubmissionFileURL)
	assert.Equal(t, "jawaban teks", *res.Submission.SubmissionText)
	assert.Equal(t, []string{oldURL}, deletedURLs)
}

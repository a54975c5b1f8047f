package dto

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validExerciseRequest() ExerciseRequest {
	return ExerciseRequest{
		Title:    "Tes 1",
		AuthorID: uuid.NewString(),
		Grade:    "IV",
		Questions: []ExerciseQuestionRequest{
			{Question: "2+2=4", CorrectAnswer: "benar"},
		},
	}
}

func TestExerciseRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ExerciseRequest)
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(r *ExerciseRequest) {},
		},
		{
			name:    "judul kosong",
			mutate:  func(r *ExerciseRequest) { r.Title = "  " },
			wantMsg: "Judul latihan harus diisi",
		},
		{
			name:    "author kosong",
			mutate:  func(r *ExerciseRequest) { r.AuthorID = "" },
			wantMsg: "Author ID harus diisi",
		},
		{
			name:    "tanpa soal",
			mutate:  func(r *ExerciseRequest) { r.Questions = nil },
			wantMsg: "Latihan harus memiliki minimal satu soal",
		},
		{
			name: "soal kedua kosong",
			mutate: func(r *ExerciseRequest) {
				r.Questions = append(r.Questions, ExerciseQuestionRequest{Question: "", CorrectAnswer: "salah"})
			},
			wantMsg: "Soal nomor 2 harus diisi",
		},
		{
			name: "jawaban soal kedua di luar benar/salah",
			mutate: func(r *ExerciseRequest) {
				r.Questions = append(r.Questions, ExerciseQuestionRequest{Question: "1+1=3", CorrectAnswer: "mungkin"})
			},
			wantMsg: "Jawaban benar untuk soal nomor 2 harus 'benar' atau 'salah'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validExerciseRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			fe, ok := err.(*fiber.Error)
			assert.True(t, ok)
			assert.Equal(t, fiber.StatusBadRequest, fe.Code)
			assert.Equal(t, tt.wantMsg, fe.Message)
		})
	}
}

func TestExerciseRequestToModels(t *testing.T) {
	req := validExerciseRequest()
	req.Grade = "" // default IV

	ex := req.ToModel()
	assert.Equal(t, "Tes 1", ex.ExerciseTitle)
	assert.Equal(t, "IV", ex.ExerciseGrade)

	exID := uuid.New()
	questions := req.ToQuestionModels(exID)
	assert.Len(t, questions, 1)
	assert.Equal(t, exID, questions[0].QuestionExerciseID)
	assert.Equal(t, "2+2=4", questions[0].QuestionText)
	assert.Equal(t, "benar", string(questions[0].QuestionCorrect))
}

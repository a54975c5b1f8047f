package dto

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	model "sekolahku_backend/internals/features/materials/model"
)

func validQuizRequest() QuizRequest {
	return QuizRequest{
		MaterialID:    uuid.NewString(),
		Question:      "Ibukota Indonesia?",
		OptionA:       "Jakarta",
		OptionB:       "Bandung",
		OptionC:       "Surabaya",
		OptionD:       "Medan",
		CorrectAnswer: "a",
	}
}

func TestQuizRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QuizRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(r *QuizRequest) {}},
		{name: "jawaban huruf besar valid", mutate: func(r *QuizRequest) { r.CorrectAnswer = "B" }},
		{
			name:    "material id kosong",
			mutate:  func(r *QuizRequest) { r.MaterialID = "" },
			wantMsg: "Material ID harus diisi",
		},
		{
			name:    "material id bukan uuid",
			mutate:  func(r *QuizRequest) { r.MaterialID = "abc" },
			wantMsg: "Material ID tidak valid",
		},
		{
			name:    "pertanyaan kosong",
			mutate:  func(r *QuizRequest) { r.Question = " " },
			wantMsg: "Pertanyaan harus diisi",
		},
		{
			name:    "pilihan c kosong",
			mutate:  func(r *QuizRequest) { r.OptionC = "" },
			wantMsg: "Semua pilihan jawaban harus diisi",
		},
		{
			name:    "jawaban di luar a-d",
			mutate:  func(r *QuizRequest) { r.CorrectAnswer = "e" },
			wantMsg: "Jawaban benar harus salah satu dari a, b, c, atau d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validQuizRequest()
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

func TestFromModelQuiz(t *testing.T) {
	created := time.Date(2026, 2, 1, 8, 30, 0, 0, time.UTC)
	m := &model.QuizModel{
		QuizID:         uuid.New(),
		QuizMaterialID: uuid.New(),
		QuizQuestion:   "Ibukota Indonesia?",
		QuizOptionA:    "Jakarta",
		QuizOptionB:    "Bandung",
		QuizOptionC:    "Surabaya",
		QuizOptionD:    "Medan",
		QuizCorrect:    model.AnswerOptionA,
		QuizCreatedAt:  created,
		QuizUpdatedAt:  created,
	}

	resp := FromModelQuiz(m)
	assert.Equal(t, m.QuizID.String(), resp.ID)
	assert.Equal(t, m.QuizMaterialID.String(), resp.MaterialID)
	assert.Equal(t, "a", resp.CorrectAnswer)
	assert.Equal(t, "2026-02-01T08:30:00Z", resp.CreatedAt)
}

// file: internals/features/materials/dto/quiz_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/materials/model"
)

/* ==============================
   Quiz
============================== */

type QuizRequest struct {
	MaterialID    string `json:"materialId"`
	Question      string `json:"question"`
	OptionA       string `json:"optionA"`
	OptionB       string `json:"optionB"`
	OptionC       string `json:"optionC"`
	OptionD       string `json:"optionD"`
	CorrectAnswer string `json:"correctAnswer"`
}

// Validate memeriksa field satu per satu dengan pesan spesifik, fail fast.
func (r *QuizRequest) Validate() error {
	if strings.TrimSpace(r.MaterialID) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Material ID harus diisi")
	}
	if _, err := uuid.Parse(strings.TrimSpace(r.MaterialID)); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Material ID tidak valid")
	}
	if strings.TrimSpace(r.Question) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Pertanyaan harus diisi")
	}
	if strings.TrimSpace(r.OptionA) == "" ||
		strings.TrimSpace(r.OptionB) == "" ||
		strings.TrimSpace(r.OptionC) == "" ||
		strings.TrimSpace(r.OptionD) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Semua pilihan jawaban harus diisi")
	}
	if !model.AnswerOption(strings.ToLower(strings.TrimSpace(r.CorrectAnswer))).Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Jawaban benar harus salah satu dari a, b, c, atau d")
	}
	return nil
}

func (r *QuizRequest) ToModel() *model.QuizModel {
	mid, _ := uuid.Parse(strings.TrimSpace(r.MaterialID))
	return &model.QuizModel{
		QuizMaterialID: mid,
		QuizQuestion:   strings.TrimSpace(r.Question),
		QuizOptionA:    strings.TrimSpace(r.OptionA),
		QuizOptionB:    strings.TrimSpace(r.OptionB),
		QuizOptionC:    strings.TrimSpace(r.OptionC),
		QuizOptionD:    strings.TrimSpace(r.OptionD),
		QuizCorrect:    model.AnswerOption(strings.ToLower(strings.TrimSpace(r.CorrectAnswer))),
	}
}

type QuizResponse struct {
	ID            string `json:"id"`
	MaterialID    string `json:"materialId"`
	Question      string `json:"question"`
	OptionA       string `json:"optionA"`
	OptionB       string `json:"optionB"`
	OptionC       string `json:"optionC"`
	OptionD       string `json:"optionD"`
	CorrectAnswer string `json:"correctAnswer"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

func FromModelQuiz(m *model.QuizModel) QuizResponse {
	return QuizResponse{
		ID:            m.QuizID.String(),
		MaterialID:    m.QuizMaterialID.String(),
		Question:      m.QuizQuestion,
		OptionA:       m.QuizOptionA,
		OptionB:       m.QuizOptionB,
		OptionC:       m.QuizOptionC,
		OptionD:       m.QuizOptionD,
		CorrectAnswer: string(m.QuizCorrect),
		CreatedAt:     m.QuizCreatedAt.Format(time.RFC3339),
		UpdatedAt:     m.QuizUpdatedAt.Format(time.RFC3339),
	}
}

func FromModelQuizzes(rows []model.QuizModel) []QuizResponse {
	out := make([]QuizResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelQuiz(&rows[i]))
	}
	return out
}

/* ==============================
   Quiz attempt
============================== */

type QuizAttemptRequest struct {
	UserID         string `json:"userId" validate:"required,uuid"`
	MaterialID     string `json:"materialId" validate:"required,uuid"`
	Score          int    `json:"score" validate:"min=0"`
	TotalQuestions int    `json:"totalQuestions" validate:"required,min=1"`
}

type QuizAttemptResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	MaterialID     string `json:"materialId"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	CreatedAt      string `json:"createdAt"`
}

func FromModelQuizAttempt(m *model.QuizAttemptModel) QuizAttemptResponse {
	return QuizAttemptResponse{
		ID:             m.AttemptID.String(),
		UserID:         m.AttemptUserID.String(),
		MaterialID:     m.AttemptMaterialID.String(),
		Score:          m.AttemptScore,
		TotalQuestions: m.AttemptTotalQuestions,
		CreatedAt:      m.AttemptCreatedAt.Format(time.RFC3339),
	}
}

func FromModelQuizAttempts(rows []model.QuizAttemptModel) []QuizAttemptResponse {
	out := make([]QuizAttemptResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelQuizAttempt(&rows[i]))
	}
	return out
}

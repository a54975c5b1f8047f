// file: internals/features/exercises/dto/exercise_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/exercises/model"
	userModel "sekolahku_backend/internals/features/users/model"
)

/* ==============================
   Requests
============================== */

type ExerciseQuestionRequest struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
}

type ExerciseRequest struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	AuthorID    string                    `json:"authorId"`
	Grade       string                    `json:"grade"`
	Questions   []ExerciseQuestionRequest `json:"questions"`
}

// Validate memeriksa judul, author, dan setiap soal dengan pesan bernomor,
// fail fast pada pelanggaran pertama.
func (r *ExerciseRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Judul latihan harus diisi")
	}
	if strings.TrimSpace(r.AuthorID) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Author ID harus diisi")
	}
	if _, err := uuid.Parse(strings.TrimSpace(r.AuthorID)); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Author ID harus diisi")
	}
	if len(r.Questions) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Latihan harus memiliki minimal satu soal")
	}
	for i, q := range r.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Soal nomor %d harus diisi", i+1))
		}
		if !model.ExerciseAnswer(q.CorrectAnswer).Valid() {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Jawaban benar untuk soal nomor %d harus 'benar' atau 'salah'", i+1))
		}
	}
	return nil
}

func (r *ExerciseRequest) ToModel() *model.ExerciseModel {
	authorID, _ := uuid.Parse(strings.TrimSpace(r.AuthorID))
	grade := strings.TrimSpace(r.Grade)
	if grade == "" {
		grade = "IV"
	}
	return &model.ExerciseModel{
		ExerciseTitle:       strings.TrimSpace(r.Title),
		ExerciseDescription: strings.TrimSpace(r.Description),
		ExerciseGrade:       grade,
		ExerciseAuthorID:    authorID,
	}
}

func (r *ExerciseRequest) ToQuestionModels(exerciseID uuid.UUID) []model.ExerciseQuestionModel {
	out := make([]model.ExerciseQuestionModel, 0, len(r.Questions))
	for _, q := range r.Questions {
		out = append(out, model.ExerciseQuestionModel{
			QuestionExerciseID: exerciseID,
			QuestionText:       strings.TrimSpace(q.Question),
			QuestionCorrect:    model.ExerciseAnswer(q.CorrectAnswer),
		})
	}
	return out
}

/* ==============================
   Responses
============================== */

type AuthorResponse struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Username string `json:"username"`
}

func fromAuthor(u *userModel.UserModel) *AuthorResponse {
	if u == nil {
		return nil
	}
	return &AuthorResponse{
		ID:       u.UserID.String(),
		Fullname: u.UserFullname,
		Username: u.UserUsername,
	}
}

type ExerciseQuestionResponse struct {
	ID            string `json:"id"`
	ExerciseID    string `json:"exerciseId"`
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
}

type ExerciseResponse struct {
	ID          string                     `json:"id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Grade       string                     `json:"grade"`
	AuthorID    string                     `json:"authorId"`
	Author      *AuthorResponse            `json:"author,omitempty"`
	Questions   []ExerciseQuestionResponse `json:"questions"`
	CreatedAt   string                     `json:"createdAt"`
	UpdatedAt   string                     `json:"updatedAt"`
}

func FromModelQuestion(m *model.ExerciseQuestionModel) ExerciseQuestionResponse {
	return ExerciseQuestionResponse{
		ID:            m.QuestionID.String(),
		ExerciseID:    m.QuestionExerciseID.String(),
		Question:      m.QuestionText,
		CorrectAnswer: string(m.QuestionCorrect),
	}
}

func FromModelExercise(m *model.ExerciseModel) ExerciseResponse {
	questions := make([]ExerciseQuestionResponse, 0, len(m.Questions))
	for i := range m.Questions {
		questions = append(questions, FromModelQuestion(&m.Questions[i]))
	}
	return ExerciseResponse{
		ID:          m.ExerciseID.String(),
		Title:       m.ExerciseTitle,
		Description: m.ExerciseDescription,
		Grade:       m.ExerciseGrade,
		AuthorID:    m.ExerciseAuthorID.String(),
		Author:      fromAuthor(m.Author),
		Questions:   questions,
		CreatedAt:   m.ExerciseCreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.ExerciseUpdatedAt.Format(time.RFC3339),
	}
}

func FromModelExercises(rows []model.ExerciseModel) []ExerciseResponse {
	out := make([]ExerciseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelExercise(&rows[i]))
	}
	return out
}

/* ==============================
   Attempts
============================== */

type ExerciseAttemptRequest struct {
	UserID         string `json:"userId" validate:"required,uuid"`
	ExerciseID     string `json:"exerciseId" validate:"required,uuid"`
	Score          int    `json:"score" validate:"min=0"`
	TotalQuestions int    `json:"totalQuestions" validate:"required,min=1"`
}

type ExerciseAttemptResponse struct {
	ID             string            `json:"id"`
	UserID         string            `json:"userId"`
	ExerciseID     string            `json:"exerciseId"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"totalQuestions"`
	Exercise       *ExerciseResponse `json:"exercise,omitempty"`
	CreatedAt      string            `json:"createdAt"`
}

func FromModelAttempt(m *model.ExerciseAttemptModel) ExerciseAttemptResponse {
	resp := ExerciseAttemptResponse{
		ID:             m.AttemptID.String(),
		UserID:         m.AttemptUserID.String(),
		ExerciseID:     m.AttemptExerciseID.String(),
		Score:          m.AttemptScore,
		TotalQuestions: m.AttemptTotalQuestions,
		CreatedAt:      m.AttemptCreatedAt.Format(time.RFC3339),
	}
	if m.Exercise != nil {
		ex := FromModelExercise(m.Exercise)
		resp.Exercise = &ex
	}
	return resp
}

func FromModelAttempts(rows []model.ExerciseAttemptModel) []ExerciseAttemptResponse {
	out := make([]ExerciseAttemptResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelAttempt(&rows[i]))
	}
	return out
}

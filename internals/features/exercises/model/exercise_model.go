// file: internals/features/exercises/model/exercise_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/model"
)

type ExerciseAnswer string

const (
	ExerciseAnswerBenar ExerciseAnswer = "benar"
	ExerciseAnswerSalah ExerciseAnswer = "salah"
)

func (a ExerciseAnswer) Valid() bool {
	return a == ExerciseAnswerBenar || a == ExerciseAnswerSalah
}

type ExerciseModel struct {
	ExerciseID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exercise_id" json:"exercise_id"`
	ExerciseTitle       string    `gorm:"type:varchar(200);not null;column:exercise_title" json:"exercise_title"`
	ExerciseDescription string    `gorm:"type:text;column:exercise_description" json:"exercise_description"`
	ExerciseGrade       string    `gorm:"type:varchar(16);not null;default:'IV';column:exercise_grade" json:"exercise_grade"`
	ExerciseAuthorID    uuid.UUID `gorm:"type:uuid;not null;column:exercise_author_id" json:"exercise_author_id"`

	ExerciseCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:exercise_created_at" json:"exercise_created_at"`
	ExerciseUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:exercise_updated_at" json:"exercise_updated_at"`

	Author    *userModel.UserModel    `gorm:"foreignKey:ExerciseAuthorID;references:UserID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Questions []ExerciseQuestionModel `gorm:"foreignKey:QuestionExerciseID;references:ExerciseID" json:"questions,omitempty"`
}

func (ExerciseModel) TableName() string { return "exercises" }

// Soal diganti borongan saat latihan di-update: semua baris lama dihapus,
// set baru dari request dimasukkan dalam satu transaksi.
type ExerciseQuestionModel struct {
	QuestionID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:question_id" json:"question_id"`
	QuestionExerciseID uuid.UUID      `gorm:"type:uuid;not null;column:question_exercise_id" json:"question_exercise_id"`
	QuestionText       string         `gorm:"type:text;not null;column:question_text" json:"question_text"`
	QuestionCorrect    ExerciseAnswer `gorm:"type:varchar(8);not null;column:question_correct_answer" json:"question_correct_answer"`

	QuestionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:question_created_at" json:"question_created_at"`

	Exercise *ExerciseModel `gorm:"foreignKey:QuestionExerciseID;references:ExerciseID;constraint:OnDelete:CASCADE" json:"exercise,omitempty"`
}

func (ExerciseQuestionModel) TableName() string { return "exercise_questions" }

type ExerciseAttemptModel struct {
	AttemptID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attempt_id" json:"attempt_id"`
	AttemptUserID     uuid.UUID `gorm:"type:uuid;not null;column:attempt_user_id" json:"attempt_user_id"`
	AttemptExerciseID uuid.UUID `gorm:"type:uuid;not null;column:attempt_exercise_id" json:"attempt_exercise_id"`

	AttemptScore          int `gorm:"type:int;not null;column:attempt_score" json:"attempt_score"`
	AttemptTotalQuestions int `gorm:"type:int;not null;column:attempt_total_questions" json:"attempt_total_questions"`

	AttemptCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:attempt_created_at" json:"attempt_created_at"`

	User     *userModel.UserModel `gorm:"foreignKey:AttemptUserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Exercise *ExerciseModel       `gorm:"foreignKey:AttemptExerciseID;references:ExerciseID;constraint:OnDelete:CASCADE" json:"exercise,omitempty"`
}

func (ExerciseAttemptModel) TableName() string { return "exercise_attempts" }

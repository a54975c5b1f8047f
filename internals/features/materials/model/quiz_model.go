// file: internals/features/materials/model/quiz_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AnswerOption string

const (
	AnswerOptionA AnswerOption = "a"
	AnswerOptionB AnswerOption = "b"
	AnswerOptionC AnswerOption = "c"
	AnswerOptionD AnswerOption = "d"
)

func (a AnswerOption) Valid() bool {
	switch a {
	case AnswerOptionA, AnswerOptionB, AnswerOptionC, AnswerOptionD:
		return true
	}
	return false
}

type QuizModel struct {
	QuizID         uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_id" json:"quiz_id"`
	QuizMaterialID uuid.UUID    `gorm:"type:uuid;not null;column:quiz_material_id" json:"quiz_material_id"`
	QuizQuestion   string       `gorm:"type:text;not null;column:quiz_question" json:"quiz_question"`
	QuizOptionA    string       `gorm:"type:text;not null;column:quiz_option_a" json:"quiz_option_a"`
	QuizOptionB    string       `gorm:"type:text;not null;column:quiz_option_b" json:"quiz_option_b"`
	QuizOptionC    string       `gorm:"type:text;not null;column:quiz_option_c" json:"quiz_option_c"`
	QuizOptionD    string       `gorm:"type:text;not null;column:quiz_option_d" json:"quiz_option_d"`
	QuizCorrect    AnswerOption `gorm:"type:varchar(1);not null;column:quiz_correct_answer" json:"quiz_correct_answer"`

	QuizCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:quiz_created_at" json:"quiz_created_at"`
	QuizUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:quiz_updated_at" json:"quiz_updated_at"`

	Material *LearningMaterialModel `gorm:"foreignKey:QuizMaterialID;references:MaterialID;constraint:OnDelete:CASCADE" json:"material,omitempty"`
}

func (QuizModel) TableName() string { return "quizzes" }

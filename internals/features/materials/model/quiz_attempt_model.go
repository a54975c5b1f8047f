// file: internals/features/materials/model/quiz_attempt_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/model"
)

// Satu baris per percobaan quiz. Tidak ada constraint unik: siswa boleh
// mencoba berkali-kali.
type QuizAttemptModel struct {
	AttemptID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attempt_id" json:"attempt_id"`
	AttemptUserID     uuid.UUID `gorm:"type:uuid;not null;column:attempt_user_id" json:"attempt_user_id"`
	AttemptMaterialID uuid.UUID `gorm:"type:uuid;not null;column:attempt_material_id" json:"attempt_material_id"`

	// Skor disimpan sebagai persentase bulat 0..100
	AttemptScore          int `gorm:"type:int;not null;column:attempt_score" json:"attempt_score"`
	AttemptTotalQuestions int `gorm:"type:int;not null;column:attempt_total_questions" json:"attempt_total_questions"`

	AttemptCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:attempt_created_at" json:"attempt_created_at"`

	User     *userModel.UserModel   `gorm:"foreignKey:AttemptUserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Material *LearningMaterialModel `gorm:"foreignKey:AttemptMaterialID;references:MaterialID;constraint:OnDelete:CASCADE" json:"material,omitempty"`
}

func (QuizAttemptModel) TableName() string { return "quiz_attempts" }

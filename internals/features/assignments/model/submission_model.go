// file: internals/features/assignments/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/model"
)

type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusLate      SubmissionStatus = "late"
	SubmissionStatusGraded    SubmissionStatus = "graded"
)

// Maksimal satu baris per (assignment, student); submit ulang menimpa baris
// yang sama. Invarian ini juga dijaga index unik di DB.
type SubmissionModel struct {
	SubmissionID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:submission_id" json:"submission_id"`
	SubmissionAssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submission_assignment_user;column:submission_assignment_id" json:"submission_assignment_id"`
	SubmissionUserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submission_assignment_user;column:submission_user_id" json:"submission_user_id"`

	// Terisi salah satu sesuai tipe assignment: file -> URL, text -> teks.
	SubmissionFileURL *string `gorm:"type:text;column:submission_file_url" json:"submission_file_url,omitempty"`
	SubmissionText    *string `gorm:"type:text;column:submission_text" json:"submission_text,omitempty"`

	SubmissionScore    *int             `gorm:"type:int;column:submission_score" json:"submission_score,omitempty"`
	SubmissionFeedback *string          `gorm:"type:text;column:submission_feedback" json:"submission_feedback,omitempty"`
	SubmissionStatus   SubmissionStatus `gorm:"type:varchar(12);not null;default:'pending';column:submission_status" json:"submission_status"`

	SubmissionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:submission_created_at" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:submission_updated_at" json:"submission_updated_at"`

	Assignment *AssignmentModel     `gorm:"foreignKey:SubmissionAssignmentID;references:AssignmentID;constraint:OnDelete:CASCADE" json:"assignment,omitempty"`
	User       *userModel.UserModel `gorm:"foreignKey:SubmissionUserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (SubmissionModel) TableName() string { return "assignment_submissions" }

// file: internals/features/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/model"
)

type AssignmentType string

const (
	AssignmentTypeFile AssignmentType = "file"
	AssignmentTypeText AssignmentType = "text"
)

func (t AssignmentType) Valid() bool {
	return t == AssignmentTypeFile || t == AssignmentTypeText
}

type AssignmentModel struct {
	AssignmentID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_id" json:"assignment_id"`
	AssignmentTitle       string         `gorm:"type:varchar(200);not null;column:assignment_title" json:"assignment_title"`
	AssignmentDescription *string        `gorm:"type:text;column:assignment_description" json:"assignment_description,omitempty"`
	AssignmentType        AssignmentType `gorm:"type:varchar(8);not null;column:assignment_type" json:"assignment_type"`
	AssignmentQuestion    string         `gorm:"type:text;not null;column:assignment_question" json:"assignment_question"`
	AssignmentDocumentURL *string        `gorm:"type:text;column:assignment_document_url" json:"assignment_document_url,omitempty"`
	AssignmentDueDate     time.Time      `gorm:"type:timestamptz;not null;column:assignment_due_date" json:"assignment_due_date"`
	AssignmentGrade       string         `gorm:"type:varchar(16);not null;column:assignment_grade" json:"assignment_grade"`
	AssignmentAuthorID    uuid.UUID      `gorm:"type:uuid;not null;column:assignment_author_id" json:"assignment_author_id"`

	AssignmentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:assignment_created_at" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:assignment_updated_at" json:"assignment_updated_at"`

	Author      *userModel.UserModel `gorm:"foreignKey:AssignmentAuthorID;references:UserID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Submissions []SubmissionModel    `gorm:"foreignKey:SubmissionAssignmentID;references:AssignmentID" json:"submissions,omitempty"`
}

func (AssignmentModel) TableName() string { return "assignments" }

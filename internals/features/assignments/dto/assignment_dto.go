// file: internals/features/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	model "sekolahku_backend/internals/features/assignments/model"
)

type AssignmentResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type"`
	Question    string  `json:"question"`
	DocumentURL *string `json:"documentUrl,omitempty"`
	DueDate     string  `json:"dueDate"`
	Grade       string  `json:"grade"`
	AuthorID    string  `json:"authorId"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func FromModelAssignment(m *model.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		ID:          m.AssignmentID.String(),
		Title:       m.AssignmentTitle,
		Description: m.AssignmentDescription,
		Type:        string(m.AssignmentType),
		Question:    m.AssignmentQuestion,
		DocumentURL: m.AssignmentDocumentURL,
		DueDate:     m.AssignmentDueDate.Format(time.RFC3339),
		Grade:       m.AssignmentGrade,
		AuthorID:    m.AssignmentAuthorID.String(),
		CreatedAt:   m.AssignmentCreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.AssignmentUpdatedAt.Format(time.RFC3339),
	}
}

func FromModelAssignments(rows []model.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelAssignment(&rows[i]))
	}
	return out
}

type SubmissionResponse struct {
	ID             string  `json:"id"`
	AssignmentID   string  `json:"assignmentId"`
	UserID         string  `json:"userId"`
	FileURL        *string `json:"fileUrl,omitempty"`
	SubmissionText *string `json:"submissionText,omitempty"`
	Score          *int    `json:"score,omitempty"`
	Feedback       *string `json:"feedback,omitempty"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

func FromModelSubmission(m *model.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		ID:             m.SubmissionID.String(),
		AssignmentID:   m.SubmissionAssignmentID.String(),
		UserID:         m.SubmissionUserID.String(),
		FileURL:        m.SubmissionFileURL,
		SubmissionText: m.SubmissionText,
		Score:          m.SubmissionScore,
		Feedback:       m.SubmissionFeedback,
		Status:         string(m.SubmissionStatus),
		CreatedAt:      m.SubmissionCreatedAt.Format(time.RFC3339),
		UpdatedAt:      m.SubmissionUpdatedAt.Format(time.RFC3339),
	}
}

func FromModelSubmissions(rows []model.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelSubmission(&rows[i]))
	}
	return out
}

type GradeSubmissionRequest struct {
	Score    *int   `json:"score" validate:"required,min=0,max=100"`
	Feedback string `json:"feedback"`
}

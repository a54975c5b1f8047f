// file: internals/features/discussions/dto/discussion_dto.go
package dto

import (
	"time"

	model "sekolahku_backend/internals/features/discussions/model"
	userModel "sekolahku_backend/internals/features/users/model"
)

type AuthorResponse struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func fromAuthor(u *userModel.UserModel) *AuthorResponse {
	if u == nil {
		return nil
	}
	return &AuthorResponse{
		ID:       u.UserID.String(),
		Fullname: u.UserFullname,
		Username: u.UserUsername,
		Role:     string(u.UserRole),
	}
}

/* ==============================
   Discussion
============================== */

type DiscussionRequest struct {
	Content string `json:"content"`
}

type DiscussionResponse struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	AuthorID  string            `json:"authorId"`
	Author    *AuthorResponse   `json:"author,omitempty"`
	Comments  []CommentResponse `json:"comments,omitempty"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
}

func FromModelDiscussion(m *model.DiscussionModel) DiscussionResponse {
	resp := DiscussionResponse{
		ID:        m.DiscussionID.String(),
		Content:   m.DiscussionContent,
		AuthorID:  m.DiscussionAuthorID.String(),
		Author:    fromAuthor(m.Author),
		CreatedAt: m.DiscussionCreatedAt.Format(time.RFC3339),
		UpdatedAt: m.DiscussionUpdatedAt.Format(time.RFC3339),
	}
	if len(m.Comments) > 0 {
		resp.Comments = FromModelComments(m.Comments)
	}
	return resp
}

func FromModelDiscussions(rows []model.DiscussionModel) []DiscussionResponse {
	out := make([]DiscussionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelDiscussion(&rows[i]))
	}
	return out
}

/* ==============================
   Comment
============================== */

type CommentRequest struct {
	DiscussionID string `json:"discussionId"`
	Content      string `json:"content"`
}

type CommentResponse struct {
	ID           string          `json:"id"`
	DiscussionID string          `json:"discussionId"`
	Content      string          `json:"content"`
	AuthorID     string          `json:"authorId"`
	Author       *AuthorResponse `json:"author,omitempty"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}

func FromModelComment(m *model.CommentModel) CommentResponse {
	return CommentResponse{
		ID:           m.CommentID.String(),
		DiscussionID: m.CommentDiscussionID.String(),
		Content:      m.CommentContent,
		AuthorID:     m.CommentAuthorID.String(),
		Author:       fromAuthor(m.Author),
		CreatedAt:    m.CommentCreatedAt.Format(time.RFC3339),
		UpdatedAt:    m.CommentUpdatedAt.Format(time.RFC3339),
	}
}

func FromModelComments(rows []model.CommentModel) []CommentResponse {
	out := make([]CommentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelComment(&rows[i]))
	}
	return out
}

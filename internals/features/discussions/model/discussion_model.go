// file: internals/features/discussions/model/discussion_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/model"
)

type DiscussionModel struct {
	DiscussionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:discussion_id" json:"discussion_id"`
	DiscussionContent  string    `gorm:"type:text;not null;column:discussion_content" json:"discussion_content"`
	DiscussionAuthorID uuid.UUID `gorm:"type:uuid;not null;column:discussion_author_id" json:"discussion_author_id"`

	DiscussionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:discussion_created_at" json:"discussion_created_at"`
	DiscussionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:discussion_updated_at" json:"discussion_updated_at"`

	Author   *userModel.UserModel `gorm:"foreignKey:DiscussionAuthorID;references:UserID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Comments []CommentModel       `gorm:"foreignKey:CommentDiscussionID;references:DiscussionID" json:"comments,omitempty"`
}

func (DiscussionModel) TableName() string { return "discussions" }

type CommentModel struct {
	CommentID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:comment_id" json:"comment_id"`
	CommentDiscussionID uuid.UUID `gorm:"type:uuid;not null;column:comment_discussion_id" json:"comment_discussion_id"`
	CommentContent      string    `gorm:"type:text;not null;column:comment_content" json:"comment_content"`
	CommentAuthorID     uuid.UUID `gorm:"type:uuid;not null;column:comment_author_id" json:"comment_author_id"`

	CommentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:comment_created_at" json:"comment_created_at"`
	CommentUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:comment_updated_at" json:"comment_updated_at"`

	Discussion *DiscussionModel     `gorm:"foreignKey:CommentDiscussionID;references:DiscussionID;constraint:OnDelete:CASCADE" json:"discussion,omitempty"`
	Author     *userModel.UserModel `gorm:"foreignKey:CommentAuthorID;references:UserID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

func (CommentModel) TableName() string { return "comments" }

// file: internals/features/discussions/service/discussion_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/discussions/model"
	userModel "sekolahku_backend/internals/features/users/model"
)

/* ==============================
   Discussion store
   Seam persistence untuk handler diskusi & komentar.
============================== */

type DiscussionStore interface {
	ListDiscussions(ctx context.Context) ([]model.DiscussionModel, error)
	// AuthorExists memastikan baris user penulis masih ada; token basi
	// tidak boleh berujung pelanggaran FK.
	AuthorExists(ctx context.Context, userID uuid.UUID) (bool, error)
	DiscussionExists(ctx context.Context, id uuid.UUID) (bool, error)
	// CreateDiscussion menyimpan baris lalu memuat ulang relasi Author.
	CreateDiscussion(ctx context.Context, row *model.DiscussionModel) error
	// FindDiscussion mengembalikan nil, nil kalau tidak ada.
	FindDiscussion(ctx context.Context, id uuid.UUID) (*model.DiscussionModel, error)
	SaveDiscussion(ctx context.Context, row *model.DiscussionModel) error
	DeleteDiscussion(ctx context.Context, row *model.DiscussionModel) error

	// CreateComment menyimpan baris lalu memuat ulang relasi Author.
	CreateComment(ctx context.Context, row *model.CommentModel) error
	FindComment(ctx context.Context, id uuid.UUID) (*model.CommentModel, error)
	SaveComment(ctx context.Context, row *model.CommentModel) error
	DeleteComment(ctx context.Context, row *model.CommentModel) error
}

type GormDiscussionStore struct {
	DB *gorm.DB
}

func NewGormDiscussionStore(db *gorm.DB) *GormDiscussionStore {
	return &GormDiscussionStore{DB: db}
}

func (s *GormDiscussionStore) ListDiscussions(ctx context.Context) ([]model.DiscussionModel, error) {
	var rows []model.DiscussionModel
	err := s.DB.WithContext(ctx).
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comment_created_at ASC")
		}).
		Preload("Comments.Author").
		Order("discussion_created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (s *GormDiscussionStore) AuthorExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormDiscussionStore) DiscussionExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&model.DiscussionModel{}).
		Where("discussion_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (s *GormDiscussionStore) CreateDiscussion(ctx context.Context, row *model.DiscussionModel) error {
	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	return s.DB.WithContext(ctx).
		Preload("Author").
		First(row, "discussion_id = ?", row.DiscussionID).Error
}

func (s *GormDiscussionStore) FindDiscussion(ctx context.Context, id uuid.UUID) (*model.DiscussionModel, error) {
	var row model.DiscussionModel
	err := s.DB.WithContext(ctx).
		First(&row, "discussion_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormDiscussionStore) SaveDiscussion(ctx context.Context, row *model.DiscussionModel) error {
	return s.DB.WithContext(ctx).Save(row).Error
}

func (s *GormDiscussionStore) DeleteDiscussion(ctx context.Context, row *model.DiscussionModel) error {
	return s.DB.WithContext(ctx).Delete(row).Error
}

func (s *GormDiscussionStore) CreateComment(ctx context.Context, row *model.CommentModel) error {
	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	return s.DB.WithContext(ctx).
		Preload("Author").
		First(row, "comment_id = ?", row.CommentID).Error
}

func (s *GormDiscussionStore) FindComment(ctx context.Context, id uuid.UUID) (*model.CommentModel, error) {
	var row model.CommentModel
	err := s.DB.WithContext(ctx).
		First(&row, "comment_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormDiscussionStore) SaveComment(ctx context.Context, row *model.CommentModel) error {
	return s.DB.WithContext(ctx).Save(row).Error
}

func (s *GormDiscussionStore) DeleteComment(ctx context.Context, row *model.CommentModel) error {
	return s.DB.WithContext(ctx).Delete(row).Error
}

// file: internals/features/users/service/student_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/users/model"
)

/* ==============================
   Student store
   Seam persistence untuk handler manajemen siswa.
============================== */

type StudentStore interface {
	ListStudents(ctx context.Context) ([]model.UserModel, error)
	// FindStudent mengembalikan nil, nil kalau tidak ada.
	FindStudent(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
	// CountUsername menghitung pemakai username lain; excludeID uuid.Nil
	// berarti tanpa pengecualian (dipakai saat create).
	CountUsername(ctx context.Context, username string, excludeID uuid.UUID) (int64, error)
	CreateStudent(ctx context.Context, row *model.UserModel) error
	SaveStudent(ctx context.Context, row *model.UserModel) error
	DeleteStudent(ctx context.Context, row *model.UserModel) error
}

type GormStudentStore struct {
	DB *gorm.DB
}

func NewGormStudentStore(db *gorm.DB) *GormStudentStore {
	return &GormStudentStore{DB: db}
}

func (s *GormStudentStore) ListStudents(ctx context.Context) ([]model.UserModel, error) {
	var rows []model.UserModel
	err := s.DB.WithContext(ctx).
		Where("user_role = ?", model.UserRoleStudent).
		Order("user_fullname ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStudentStore) FindStudent(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var row model.UserModel
	err := s.DB.WithContext(ctx).
		First(&row, "user_id = ? AND user_role = ?", id, model.UserRoleStudent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormStudentStore) CountUsername(ctx context.Context, username string, excludeID uuid.UUID) (int64, error) {
	q := s.DB.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_username = ?", username)
	if excludeID != uuid.Nil {
		q = q.Where("user_id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (s *GormStudentStore) CreateStudent(ctx context.Context, row *model.UserModel) error {
	return s.DB.WithContext(ctx).Create(row).Error
}

func (s *GormStudentStore) SaveStudent(ctx context.Context, row *model.UserModel) error {
	return s.DB.WithContext(ctx).Save(row).Error
}

func (s *GormStudentStore) DeleteStudent(ctx context.Context, row *model.UserModel) error {
	return s.DB.WithContext(ctx).Delete(row).Error
}

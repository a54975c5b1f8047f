// file: internals/features/exercises/service/exercise_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/exercises/model"
)

/* ==============================
   Exercise store
   Seam persistence supaya handler latihan & attempt bisa diuji
   tanpa database sungguhan.
============================== */

type ExerciseStore interface {
	ListExercises(ctx context.Context) ([]model.ExerciseModel, error)
	// FindExercise mengembalikan nil, nil kalau tidak ada.
	FindExercise(ctx context.Context, id uuid.UUID) (*model.ExerciseModel, error)
	CreateExerciseWithQuestions(ctx context.Context, ex *model.ExerciseModel, questions []model.ExerciseQuestionModel) error
	// ReplaceExerciseQuestions menyimpan skalar latihan lalu mengganti
	// seluruh set soal dengan yang baru, atomik.
	ReplaceExerciseQuestions(ctx context.Context, ex *model.ExerciseModel, questions []model.ExerciseQuestionModel) error
	DeleteExercise(ctx context.Context, id uuid.UUID) (int64, error)

	CreateAttempt(ctx context.Context, attempt *model.ExerciseAttemptModel) error
	ListAttemptsByUser(ctx context.Context, userID uuid.UUID) ([]model.ExerciseAttemptModel, error)
}

type GormExerciseStore struct {
	DB *gorm.DB
}

func NewGormExerciseStore(db *gorm.DB) *GormExerciseStore {
	return &GormExerciseStore{DB: db}
}

func (s *GormExerciseStore) ListExercises(ctx context.Context) ([]model.ExerciseModel, error) {
	var rows []model.ExerciseModel
	err := s.DB.WithContext(ctx).
		Preload("Author").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_created_at ASC")
		}).
		Order("exercise_created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormExerciseStore) FindExercise(ctx context.Context, id uuid.UUID) (*model.ExerciseModel, error) {
	var row model.ExerciseModel
	err := s.DB.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_created_at ASC")
		}).
		First(&row, "exercise_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormExerciseStore) CreateExerciseWithQuestions(ctx context.Context, ex *model.ExerciseModel, questions []model.ExerciseQuestionModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ex).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuestionExerciseID = ex.ExerciseID
		}
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}
		ex.Questions = questions
		return nil
	})
}

func (s *GormExerciseStore) ReplaceExerciseQuestions(ctx context.Context, ex *model.ExerciseModel, questions []model.ExerciseQuestionModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ex).Error; err != nil {
			return err
		}
		if err := tx.
			Where("question_exercise_id = ?", ex.ExerciseID).
			Delete(&model.ExerciseQuestionModel{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuestionExerciseID = ex.ExerciseID
		}
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}
		ex.Questions = questions
		return nil
	})
}

func (s *GormExerciseStore) DeleteExercise(ctx context.Context, id uuid.UUID) (int64, error) {
	res := s.DB.WithContext(ctx).
		Delete(&model.ExerciseModel{}, "exercise_id = ?", id)
	return res.RowsAffected, res.Error
}

func (s *GormExerciseStore) CreateAttempt(ctx context.Context, attempt *model.ExerciseAttemptModel) error {
	return s.DB.WithContext(ctx).Create(attempt).Error
}

func (s *GormExerciseStore) ListAttemptsByUser(ctx context.Context, userID uuid.UUID) ([]model.ExerciseAttemptModel, error) {
	var rows []model.ExerciseAttemptModel
	err := s.DB.WithContext(ctx).
		Preload("Exercise").
		Where("attempt_user_id = ?", userID).
		Order("attempt_created_at DESC").
		Find(&rows).Error
	return rows, err
}

package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	assignmentModel "sekolahku_backend/internals/features/assignments/model"
	discussionModel "sekolahku_backend/internals/features/discussions/model"
	exerciseModel "sekolahku_backend/internals/features/exercises/model"
	materialModel "sekolahku_backend/internals/features/materials/model"
	userModel "sekolahku_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate dengan urutan parent → child supaya
// foreign key + ON DELETE CASCADE terbentuk dengan benar.
func Migrate(db *gorm.DB) {
	models := []any{
		&userModel.UserModel{},
		&materialModel.LearningMaterialModel{},
		&materialModel.QuizModel{},
		&materialModel.QuizAttemptModel{},
		&discussionModel.DiscussionModel{},
		&discussionModel.CommentModel{},
		&exerciseModel.ExerciseModel{},
		&exerciseModel.ExerciseQuestionModel{},
		&exerciseModel.ExerciseAttemptModel{},
		&assignmentModel.AssignmentModel{},
		&assignmentModel.SubmissionModel{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("❌ Gagal migrasi schema: %v", err)
	}
	log.Println("✅ Migrasi schema selesai.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	matCtl "sekolahku_backend/internals/features/materials/controller"
	"sekolahku_backend/internals/constants"
	helperOSS "sekolahku_backend/internals/helpers/oss"
	auth "sekolahku_backend/internals/middlewares/auth"
)

// Mount di bawah auth middleware. Baca untuk semua role, tulis admin only.
func MaterialRoutes(r fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	mat := matCtl.NewMaterialController(db, blob)
	quiz := matCtl.NewQuizController(db)
	attempt := matCtl.NewQuizAttemptController(db)

	adminOnly := auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola materi"), constants.AdminOnly)
	studentOnly := auth.OnlyRolesSlice(constants.RoleErrorStudent("mengerjakan quiz"), constants.StudentOnly)

	// ================== LEARNING MATERIALS ==================
	materials := r.Group("/learning-materials")
	materials.Get("/", mat.List)
	materials.Get("/:id", mat.GetByID)
	materials.Post("/", adminOnly, mat.Create)
	materials.Put("/:id", adminOnly, mat.Update)
	materials.Delete("/:id", adminOnly, mat.Delete)

	// ================== QUIZ ==================
	quizzes := r.Group("/quiz")
	quizzes.Get("/", quiz.List)
	quizzes.Get("/by-material/:id", quiz.ListByMaterial)
	quizzes.Get("/:id", quiz.GetByID)
	quizzes.Post("/", adminOnly, quiz.Create)
	quizzes.Put("/:id", adminOnly, quiz.Update)
	quizzes.Delete("/:id", adminOnly, quiz.Delete)

	// ================== QUIZ ATTEMPTS ==================
	attempts := r.Group("/quiz-attempts")
	attempts.Post("/", studentOnly, attempt.Create)
	attempts.Get("/:id", attempt.ListByUser)
}

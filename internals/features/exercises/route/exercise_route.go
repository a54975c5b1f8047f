package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exCtl "sekolahku_backend/internals/features/exercises/controller"
	"sekolahku_backend/internals/constants"
	auth "sekolahku_backend/internals/middlewares/auth"
)

// Mount di bawah auth middleware. Baca + attempt untuk semua role, tulis admin only.
func ExerciseRoutes(r fiber.Router, db *gorm.DB) {
	ex := exCtl.NewExerciseController(db)
	attempt := exCtl.NewExerciseAttemptController(db)

	adminOnly := auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola latihan"), constants.AdminOnly)
	studentOnly := auth.OnlyRolesSlice(constants.RoleErrorStudent("mengerjakan latihan"), constants.StudentOnly)

	exercises := r.Group("/exercises")
	exercises.Get("/", ex.List)
	exercises.Get("/:id", ex.GetByID)
	exercises.Post("/", adminOnly, ex.Create)
	exercises.Put("/:id", adminOnly, ex.Update)
	exercises.Delete("/:id", adminOnly, ex.Delete)

	attempts := r.Group("/exercise-attempts")
	attempts.Post("/", studentOnly, attempt.Create)
	attempts.Get("/:userId", attempt.ListByUser)
}

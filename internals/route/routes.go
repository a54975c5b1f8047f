// file: internals/route/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asgRoutes "sekolahku_backend/internals/features/assignments/route"
	discRoutes "sekolahku_backend/internals/features/discussions/route"
	exRoutes "sekolahku_backend/internals/features/exercises/route"
	matRoutes "sekolahku_backend/internals/features/materials/route"
	userRoutes "sekolahku_backend/internals/features/users/route"
	"sekolahku_backend/internals/configs"
	helperOSS "sekolahku_backend/internals/helpers/oss"
	auth "sekolahku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh rute di bawah /api.
// Grup auth publik; sisanya di belakang middleware JWT.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.AppConfig, blob helperOSS.BlobService) {
	api := app.Group("/api")

	// ================== PUBLIC ==================
	userRoutes.AuthRoutes(api, db, cfg)

	// ================== PROTECTED ==================
	protected := api.Group("", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              cfg.JWTSecret,
		AllowCookieFallback: true,
	}))

	userRoutes.StudentAdminRoutes(protected, db, cfg)
	matRoutes.MaterialRoutes(protected, db, blob)
	discRoutes.DiscussionRoutes(protected, db)
	exRoutes.ExerciseRoutes(protected, db)
	asgRoutes.AssignmentRoutes(protected, db, blob)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "sekolahku_backend/internals/features/users/controller"
	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	authMw "sekolahku_backend/internals/middlewares"
	auth "sekolahku_backend/internals/middlewares/auth"
)

// Rute publik (tanpa auth middleware di atasnya)
func AuthRoutes(r fiber.Router, db *gorm.DB, cfg configs.AppConfig) {
	ctl := userCtl.NewAuthController(db, cfg)

	grp := r.Group("/auth")
	grp.Post("/seed-admin", ctl.SeedAdmin)
	grp.Post("/login", authMw.LoginRateLimiter(), ctl.Login)
}

// Rute manajemen siswa (admin only, mount di bawah auth middleware)
func StudentAdminRoutes(r fiber.Router, db *gorm.DB, cfg configs.AppConfig) {
	ctl := userCtl.NewStudentController(db, cfg)

	grp := r.Group("/students",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola data siswa"), constants.AdminOnly),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}

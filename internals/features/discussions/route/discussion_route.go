package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	discCtl "sekolahku_backend/internals/features/discussions/controller"
)

// Mount di bawah auth middleware: semua role boleh, kepemilikan dicek di controller.
func DiscussionRoutes(r fiber.Router, db *gorm.DB) {
	disc := discCtl.NewDiscussionController(db)
	comment := discCtl.NewCommentController(db)

	discussions := r.Group("/discussions")
	discussions.Get("/", disc.List)
	discussions.Post("/", disc.Create)
	discussions.Put("/:id", disc.Update)
	discussions.Delete("/:id", disc.Delete)

	comments := r.Group("/comments")
	comments.Post("/", comment.Create)
	comments.Put("/:id", comment.Update)
	comments.Delete("/:id", comment.Delete)
}

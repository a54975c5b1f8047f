package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asgCtl "sekolahku_backend/internals/features/assignments/controller"
	"sekolahku_backend/internals/constants"
	helperOSS "sekolahku_backend/internals/helpers/oss"
	auth "sekolahku_backend/internals/middlewares/auth"
)

// Mount di bawah auth middleware.
func AssignmentRoutes(r fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	asg := asgCtl.NewAssignmentController(db, blob)
	sub := asgCtl.NewSubmissionController(db, blob)

	adminOnly := auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola tugas"), constants.AdminOnly)
	studentOnly := auth.OnlyRolesSlice("Only students can submit assignments", constants.StudentOnly)

	assignments := r.Group("/assignments")
	assignments.Get("/", asg.List)
	assignments.Get("/:id", asg.GetByID)
	assignments.Post("/", adminOnly, asg.Create)
	assignments.Put("/:id", adminOnly, asg.Update)
	assignments.Delete("/:id", adminOnly, asg.Delete)

	// workflow submit: gate role di route, service tetap memverifikasi ulang
	assignments.Post("/:id/submit", studentOnly, sub.Submit)
	assignments.Get("/:id/submissions", adminOnly, sub.ListByAssignment)

	submissions := r.Group("/submissions")
	submissions.Put("/:id/grade", adminOnly, sub.Grade)
}

// file: internals/features/users/controller/student_controller.go
package controller

import (
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/users/dto"
	model "sekolahku_backend/internals/features/users/model"
	service "sekolahku_backend/internals/features/users/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/configs"
)

type StudentController struct {
	Store     service.StudentStore
	Validator *validator.Validate
	Accounts  *service.AccountService
}

func NewStudentController(db *gorm.DB, cfg configs.AppConfig) *StudentController {
	return &StudentController{
		Store:     service.NewGormStudentStore(db),
		Validator: validator.New(),
		Accounts:  service.NewAccountService(db, cfg),
	}
}

// GET /api/students — daftar siswa, urut nama
func (ctl *StudentController) List(c *fiber.Ctx) error {
	rows, err := ctl.Store.ListStudents(c.Context())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Data siswa berhasil diambil", dto.FromModelUsers(rows))
}

// POST /api/students — buat akun siswa
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Fullname = strings.TrimSpace(req.Fullname)
	req.Username = strings.TrimSpace(req.Username)
	req.Grade = strings.TrimSpace(req.Grade)
	if req.Fullname == "" || req.Username == "" || req.Password == "" || req.Grade == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Semua field harus diisi")
	}

	count, err := ctl.Store.CountUsername(c.Context(), req.Username, uuid.Nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
	}

	hash, err := ctl.Accounts.HashPassword(req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	student := model.UserModel{
		UserFullname: req.Fullname,
		UserUsername: req.Username,
		UserEmail:    ctl.Accounts.SynthEmail(req.Username),
		UserPassword: hash,
		UserRole:     model.UserRoleStudent,
		UserGrade:    req.Grade,
	}
	if err := ctl.Store.CreateStudent(c.Context(), &student); err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Akun siswa berhasil dibuat", dto.FromModelUser(&student))
}

// PUT /api/students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	student, err := ctl.Store.FindStudent(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username != "" && req.Username != student.UserUsername {
		count, err := ctl.Store.CountUsername(c.Context(), req.Username, student.UserID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah digunakan oleh siswa lain")
		}
		student.UserUsername = req.Username
		student.UserEmail = ctl.Accounts.SynthEmail(req.Username)
	}

	if v := strings.TrimSpace(req.Fullname); v != "" {
		student.UserFullname = v
	}
	if v := strings.TrimSpace(req.Grade); v != "" {
		student.UserGrade = v
	}
	if req.Password != "" {
		hash, err := ctl.Accounts.HashPassword(req.Password)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		student.UserPassword = hash
	}

	if err := ctl.Store.SaveStudent(c.Context(), student); err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah digunakan oleh siswa lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Data siswa berhasil diperbarui", dto.FromModelUser(student))
}

// DELETE /api/students/:id — cascade menghapus semua baris milik siswa
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	student, err := ctl.Store.FindStudent(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	if err := ctl.Store.DeleteStudent(c.Context(), student); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Siswa berhasil dihapus")
}

// file: internals/features/users/controller/auth_controller.go
package controller

import (
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/users/dto"
	service "sekolahku_backend/internals/features/users/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/configs"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Accounts  *service.AccountService
}

func NewAuthController(db *gorm.DB, cfg configs.AppConfig) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
		Accounts:  service.NewAccountService(db, cfg),
	}
}

// POST /api/auth/seed-admin — bootstrap akun admin dari ENV
func (ctl *AuthController) SeedAdmin(c *fiber.Ctx) error {
	admin, err := ctl.Accounts.SeedAdmin(c.Context())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Admin account created", dto.FromModelUser(admin))
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, token, err := ctl.Accounts.Login(c.Context(), req.Identifier, req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// cookie opsional untuk klien browser; Bearer tetap didukung
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.FromModelUser(user),
	})
}

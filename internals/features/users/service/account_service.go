// file: internals/features/users/service/account_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/users/model"
	"sekolahku_backend/internals/configs"
	helper "sekolahku_backend/internals/helpers"
)

/* ==============================
   Account service
   Pengganti identity provider eksternal: kredensial disimpan di baris user,
   email login disintesis dari username + domain aplikasi.
============================== */

type AccountService struct {
	DB  *gorm.DB
	Cfg configs.AppConfig
}

func NewAccountService(db *gorm.DB, cfg configs.AppConfig) *AccountService {
	return &AccountService{DB: db, Cfg: cfg}
}

// SynthEmail menyintesis email login dari username.
func (s *AccountService) SynthEmail(username string) string {
	return strings.ToLower(strings.TrimSpace(username)) + "@" + s.Cfg.AppDomain
}

func (s *AccountService) HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}
	return string(b), nil
}

// SeedAdmin membuat akun admin bootstrap dari konfigurasi.
// 409 jika username admin sudah terdaftar.
func (s *AccountService) SeedAdmin(ctx context.Context) (*model.UserModel, error) {
	username := strings.TrimSpace(s.Cfg.AdminUsername)
	if username == "" || s.Cfg.AdminPassword == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Admin credentials belum dikonfigurasi")
	}

	var existing model.UserModel
	err := s.DB.WithContext(ctx).
		First(&existing, "user_username = ?", username).Error
	if err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Admin account already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	hash, err := s.HashPassword(s.Cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	admin := model.UserModel{
		UserFullname: "Administrator",
		UserUsername: username,
		UserEmail:    s.SynthEmail(username),
		UserPassword: hash,
		UserRole:     model.UserRoleAdmin,
	}
	if err := s.DB.WithContext(ctx).Create(&admin).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Admin account already exists")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &admin, nil
}

// Login memverifikasi identifier (username atau email) + password dan
// menerbitkan access token HS256 berisi klaim id + role.
func (s *AccountService) Login(ctx context.Context, identifier, password string) (*model.UserModel, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Username dan password harus diisi")
	}

	var user model.UserModel
	err := s.DB.WithContext(ctx).
		Where("user_username = ? OR user_email = ?", identifier, strings.ToLower(identifier)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")
		}
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)) != nil {
		return nil, "", fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := s.IssueAccessToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// IssueAccessToken menerbitkan JWT 24 jam untuk user.
func (s *AccountService) IssueAccessToken(u *model.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   u.UserID.String(),
		"role": string(u.UserRole),
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(s.Cfg.JWTSecret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return signed, nil
}

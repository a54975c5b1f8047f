package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	model "sekolahku_backend/internals/features/users/model"
	"sekolahku_backend/internals/configs"
)

func testService() *AccountService {
	return NewAccountService(nil, configs.AppConfig{
		AdminUsername: "admin",
		AdminPassword: "rahasia",
		AppDomain:     "sekolahku.id",
		JWTSecret:     "unit-test-secret",
	})
}

func TestSynthEmail(t *testing.T) {
	svc := testService()
	assert.Equal(t, "budi@sekolahku.id", svc.SynthEmail("budi"))
	assert.Equal(t, "budi@sekolahku.id", svc.SynthEmail("  Budi "))
}

func TestHashPassword(t *testing.T) {
	svc := testService()
	hash, err := svc.HashPassword("rahasia123")
	assert.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("rahasia123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("salah")))
}

func TestIssueAccessToken(t *testing.T) {
	svc := testService()
	user := &model.UserModel{
		UserID:   uuid.New(),
		UserRole: model.UserRoleStudent,
	}

	signed, err := svc.IssueAccessToken(user)
	assert.NoError(t, err)

	tok, err := jwt.Parse(signed, func(t *jwt.Token) (any, error) {
		return []byte("unit-test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, user.UserID.String(), claims["id"])
	assert.Equal(t, "student", claims["role"])
	assert.NotEmpty(t, claims["exp"])
}

// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	model "sekolahku_backend/internals/features/users/model"
)

/* ==============================
   Requests
============================== */

type CreateStudentRequest struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Password string `json:"password"`
	Grade    string `json:"grade"`
}

type UpdateStudentRequest struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Password string `json:"password"` // kosong = tidak diganti
	Grade    string `json:"grade"`
}

type LoginRequest struct {
	// Identifier boleh username atau email sintesis username@domain
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

/* ==============================
   Responses
============================== */

type UserResponse struct {
	ID        string `json:"id"`
	Fullname  string `json:"fullname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Grade     string `json:"grade"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

func FromModelUser(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.UserID.String(),
		Fullname:  m.UserFullname,
		Username:  m.UserUsername,
		Email:     m.UserEmail,
		Role:      string(m.UserRole),
		Grade:     m.UserGrade,
		CreatedAt: m.UserCreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UserUpdatedAt.Format(time.RFC3339),
	}
}

func FromModelUsers(rows []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelUser(&rows[i]))
	}
	return out
}

// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleStudent UserRole = "student"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserFullname string    `gorm:"type:varchar(120);not null;column:user_fullname" json:"user_fullname"`
	UserUsername string    `gorm:"type:varchar(60);not null;uniqueIndex;column:user_username" json:"user_username"`
	UserEmail    string    `gorm:"type:varchar(160);not null;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"type:varchar(100);not null;column:user_password" json:"-"`
	UserRole     UserRole  `gorm:"type:varchar(16);not null;default:'student';column:user_role" json:"user_role"`
	UserGrade    string    `gorm:"type:varchar(16);not null;default:'IV';column:user_grade" json:"user_grade"`

	UserCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_updated_at" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

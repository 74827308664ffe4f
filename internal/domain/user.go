package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string     `gorm:"type:varchar(255);not null" json:"full_name"`
	IsAdmin      bool       `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest is the request body for creating an account.
// @Description Request payload for user registration.
type RegisterRequest struct {
	// Email address, used as the login identifier
	Email string `json:"email" validate:"required,email" example:"jane@example.com"`
	// Password, minimum 8 characters
	Password string `json:"password" validate:"required,min=8,max=72" example:"correct-horse-battery"`
	// Display name
	FullName string `json:"full_name" validate:"required,max=255" example:"Jane Doe"`
}

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the response body for user endpoints.
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	IsAdmin     bool       `json:"is_admin"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// AuthResponse carries a bearer token together with the user it belongs to.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		IsAdmin:     u.IsAdmin,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

package dto

import (
	"time"

	"github.com/taskify-app/taskify-api/internal/models"
)

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Username  string  `json:"username" binding:"required,min=3,max=50"`
	Email     string  `json:"email" binding:"required,email,max=100"`
	Password  string  `json:"password" binding:"required,min=6,max=100"`
	FirstName *string `json:"firstName" binding:"omitempty,max=50"`
	LastName  *string `json:"lastName" binding:"omitempty,max=50"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required,max=100"`
	Password        string `json:"password" binding:"required,max=100"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	UserID    uint64    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewAuthResponse builds the auth payload for a user and their fresh token.
func NewAuthResponse(user *models.User, token string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}
}

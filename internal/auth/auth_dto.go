package auth

import "leaveflow/internal/user"

type RegisterRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Department string `json:"department" binding:"max=100"`
	Role       string `json:"role" binding:"omitempty,oneof=employee admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User        user.UserResponse `json:"user"`
	AccessToken string            `json:"access_token"`
	ExpiresAt   int64             `json:"expires_at"`
}

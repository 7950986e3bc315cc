package dto

import (
	"time"

	"barberdesk/internal/domain/auth"
)

// LoginRequest is the request body for signing in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// FromUser creates response DTO from domain entity.
func FromUser(u *auth.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID.String(),
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

// LoginResponse is the successful sign-in payload.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *UserResponse `json:"user"`
}

// FromLoginResult creates response DTO from the sign-in result.
func FromLoginResult(r *auth.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		User:      FromUser(r.User),
	}
}

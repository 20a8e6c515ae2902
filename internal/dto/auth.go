package dto

import "github.com/google/uuid"

// Register
type RegisterRequest struct {
	Name      string     `json:"name" validate:"required,min=2,max=100"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=6"`
	Role      string     `json:"role" validate:"required,oneof=manager employee"`
	ManagerID *uuid.UUID `json:"manager_id,omitempty"`
}

// Login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserBriefDTO `json:"user"`
}

type UserBriefDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type LogoutAllResponse struct {
	SessionsTerminated int `json:"sessions_terminated"`
}

// Refresh Token
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

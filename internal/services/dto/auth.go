package dto

import (
	"time"

	"neads_backend/internal/models"
)

type RegisterRequest struct {
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required,min=8"`
	Role      models.UserRole `json:"role" validate:"required,is-user-role"`
	FirstName string          `json:"first_name" validate:"required,max=100"`
	LastName  string          `json:"last_name" validate:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TempLoginRequest asks for a one-shot login link by email.
type TempLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TempLoginConsumeRequest exchanges an emailed token for a JWT.
type TempLoginConsumeRequest struct {
	Token string `json:"token" validate:"required"`
}

type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

type UserDTO struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	CreatedAt time.Time         `json:"created_at"`
}

package dto

import (
	"neads_backend/internal/models"
)

// UserResponse is the full account view used by /users/me.
type UserResponse struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`

	// Present for creator accounts.
	Creator *CreatorResponse `json:"creator,omitempty"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
}

package auth

import (
	"errors"

	"neads_backend/internal/models"
)

// ViewPolicy describes what a requester may see and do on creator
// resources. Computed once per request from the role and reused by every
// response builder, so visibility rules live in one place.
type ViewPolicy struct {
	// ShowPersonalInfo exposes email and phone.
	ShowPersonalInfo bool
	// MaskLastName reduces the last name to an initial.
	MaskLastName bool
	CanEdit      bool
	CanRate      bool
	CanVerify    bool
	CanDelete    bool
}

// PolicyFor derives the view policy from the requester's role. isOwner is
// true when a creator account looks at its own profile.
func PolicyFor(role models.UserRole, isOwner bool) ViewPolicy {
	switch role {
	case models.UserRoleAdmin:
		return ViewPolicy{
			ShowPersonalInfo: true,
			CanEdit:          true,
			CanRate:          true,
			CanVerify:        true,
			CanDelete:        true,
		}
	case models.UserRoleConsultant:
		return ViewPolicy{
			ShowPersonalInfo: true,
			CanEdit:          true,
			CanRate:          true,
			CanVerify:        true,
		}
	case models.UserRoleCreator:
		return ViewPolicy{
			ShowPersonalInfo: isOwner,
			MaskLastName:     !isOwner,
			CanEdit:          isOwner,
		}
	default:
		// Clients get the restricted read-only view.
		return ViewPolicy{MaskLastName: true}
	}
}

// ValidateRole rejects unknown roles.
func ValidateRole(role string) error {
	switch models.UserRole(role) {
	case models.UserRoleAdmin, models.UserRoleConsultant, models.UserRoleClient, models.UserRoleCreator:
		return nil
	default:
		return errors.New("invalid role")
	}
}

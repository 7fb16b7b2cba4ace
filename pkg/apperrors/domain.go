package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

// --- Creators ---

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInvalidAgeRange = New(
	CodeValidationFailed,
	"search",
	"min_age cannot be greater than max_age",
	http.StatusBadRequest,
)

var ErrInvalidCoordinates = New(
	CodeValidationFailed,
	"geo",
	"lat and lng must be valid coordinates",
	http.StatusBadRequest,
)

// --- Ratings ---

var ErrDuplicateRating = New(
	CodeAlreadyExists,
	"rating",
	"You have already rated this creator",
	http.StatusConflict,
)

var ErrInvalidRatingScore = New(
	CodeValidationFailed,
	"rating",
	"Rating must be between 1 and 5",
	http.StatusBadRequest,
)

// --- Media & files ---

var ErrThumbnailRequired = New(
	CodeValidationFailed,
	"media",
	"Video uploads require a thumbnail image",
	http.StatusBadRequest,
)

var ErrMediaLimitReached = New(
	CodeLimitExceeded,
	"media",
	"Media limit for this type has been reached (10 per type)",
	http.StatusConflict,
)

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

package services

import (
	"neads_backend/internal/models"
	"neads_backend/internal/repositories"
	"neads_backend/pkg/apperrors"
)

// Requester identifies the authenticated caller for policy decisions.
// Nil means an unauthenticated request.
type Requester struct {
	UserID string
	Role   models.UserRole
}

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

func normalizePagination(page, pageSize int) (int, int) {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func calculateTotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return pages
}

// validateSearchCriteria rejects contradictory bounds before any query
// runs.
func validateSearchCriteria(criteria *models.CreatorSearchCriteria) error {
	if criteria.MinAge != nil && criteria.MaxAge != nil && *criteria.MinAge > *criteria.MaxAge {
		return apperrors.ErrInvalidAgeRange
	}
	return nil
}

// mapRepoError converts repository sentinel errors into AppErrors so
// handlers answer with the right status.
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.Is(err, repositories.ErrCreatorNotFound),
		apperrors.Is(err, repositories.ErrUserNotFound),
		apperrors.Is(err, repositories.ErrMediaNotFound),
		apperrors.Is(err, repositories.ErrRatingNotFound),
		apperrors.Is(err, repositories.ErrFavoriteNotFound),
		apperrors.Is(err, repositories.ErrTagNotFound):
		return apperrors.ErrNotFound(err)
	case apperrors.Is(err, repositories.ErrCreatorAlreadyExists),
		apperrors.Is(err, repositories.ErrUserAlreadyExists):
		return apperrors.ErrAlreadyExists(err)
	case apperrors.Is(err, repositories.ErrRatingAlreadyExists):
		return apperrors.ErrDuplicateRating
	case apperrors.Is(err, repositories.ErrInvalidRatingScore):
		return apperrors.ErrInvalidRatingScore
	case apperrors.Is(err, repositories.ErrMediaLimitReached):
		return apperrors.ErrMediaLimitReached
	default:
		return apperrors.InternalError(err)
	}
}

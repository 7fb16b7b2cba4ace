package services

import (
	"context"
	"testing"

	"neads_backend/internal/models"
	"neads_backend/internal/services/dto"
	"neads_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRejectsInvalidAgeRange(t *testing.T) {
	svc := NewSearchService(&fakeCreatorRepo{}, &fakeFavoriteRepo{}, fakeStorage{})

	minAge, maxAge := 40, 20
	_, err := svc.Search(context.Background(), nil, &models.CreatorSearchCriteria{
		MinAge: &minAge,
		MaxAge: &maxAge,
	}, nil)

	assert.ErrorIs(t, err, apperrors.ErrInvalidAgeRange)
}

func TestSearchFavoritesOnlyRequiresAuth(t *testing.T) {
	svc := NewSearchService(&fakeCreatorRepo{}, &fakeFavoriteRepo{}, fakeStorage{})

	_, err := svc.Search(context.Background(), nil, &models.CreatorSearchCriteria{
		FavoritesOnly: true,
	}, nil)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
}

func TestSearchMasksNamesForAnonymous(t *testing.T) {
	creatorRepo := &fakeCreatorRepo{
		searchFn: func(criteria *models.CreatorSearchCriteria) ([]models.Creator, int64, error) {
			return []models.Creator{testCreator("c1", "Alice", "Martin", 48.85, 2.35)}, 1, nil
		},
	}
	svc := NewSearchService(creatorRepo, &fakeFavoriteRepo{}, fakeStorage{})

	result, err := svc.Search(context.Background(), nil, &models.CreatorSearchCriteria{}, nil)
	require.NoError(t, err)

	summaries := result.Data.([]*dto.CreatorSummary)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Alice M.", summaries[0].DisplayName)
}

func TestSearchShowsFullNameForStaff(t *testing.T) {
	creatorRepo := &fakeCreatorRepo{
		searchFn: func(criteria *models.CreatorSearchCriteria) ([]models.Creator, int64, error) {
			return []models.Creator{testCreator("c1", "Alice", "Martin", 48.85, 2.35)}, 1, nil
		},
	}
	svc := NewSearchService(creatorRepo, &fakeFavoriteRepo{}, fakeStorage{})

	result, err := svc.Search(context.Background(), nil, &models.CreatorSearchCriteria{},
		&Requester{UserID: "u1", Role: models.UserRoleConsultant})
	require.NoError(t, err)

	summaries := result.Data.([]*dto.CreatorSummary)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Alice Martin", summaries[0].DisplayName)
}

func TestSearchNormalizesPagination(t *testing.T) {
	var seen *models.CreatorSearchCriteria
	creatorRepo := &fakeCreatorRepo{
		searchFn: func(criteria *models.CreatorSearchCriteria) ([]models.Creator, int64, error) {
			seen = criteria
			return nil, 45, nil
		},
	}
	svc := NewSearchService(creatorRepo, &fakeFavoriteRepo{}, fakeStorage{})

	result, err := svc.Search(context.Background(), nil, &models.CreatorSearchCriteria{
		Page:     0,
		PageSize: 500,
	}, nil)
	require.NoError(t, err)

	require.NotNil(t, seen)
	assert.Equal(t, 1, seen.Page)
	assert.Equal(t, maxPageSize, seen.PageSize)
	assert.Equal(t, int64(45), result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestSearchFlagsFavorites(t *testing.T) {
	creatorRepo := &fakeCreatorRepo{
		searchFn: func(criteria *models.CreatorSearchCriteria) ([]models.Creator, int64, error) {
			return []models.Creator{
				testCreator("c1", "Alice", "Martin", 48.85, 2.35),
				testCreator("c2", "Bob", "Durand", 48.85, 2.35),
			}, 2, nil
		},
	}
	favoriteRepo := &fakeFavoriteRepo{favorites: map[string]bool{"c2": true}}
	svc := NewSearchService(creatorRepo, favoriteRepo, fakeStorage{})

	result, err := svc.Search(context.Background(), nil, &models.CreatorSearchCriteria{},
		&Requester{UserID: "u1", Role: models.UserRoleClient})
	require.NoError(t, err)

	summaries := result.Data.([]*dto.CreatorSummary)
	require.Len(t, summaries, 2)
	assert.False(t, summaries[0].IsFavorite)
	assert.True(t, summaries[1].IsFavorite)
}

package services

import (
	"context"
	"testing"

	"neads_backend/internal/models"
	"neads_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteToggleUnknownCreator(t *testing.T) {
	svc := NewFavoriteService(&fakeFavoriteRepo{}, &fakeCreatorRepo{}, fakeStorage{})

	_, err := svc.Toggle(nil, Requester{UserID: "u1", Role: models.UserRoleClient}, "missing")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestFavoriteToggleFlips(t *testing.T) {
	creator := testCreator("c1", "Alice", "Martin", 48.85, 2.35)
	creatorRepo := &fakeCreatorRepo{creators: map[string]*models.Creator{"c1": &creator}}
	svc := NewFavoriteService(&fakeFavoriteRepo{}, creatorRepo, fakeStorage{})

	requester := Requester{UserID: "u1", Role: models.UserRoleClient}

	resp, err := svc.Toggle(nil, requester, "c1")
	require.NoError(t, err)
	assert.True(t, resp.IsFavorite)

	resp, err = svc.Toggle(nil, requester, "c1")
	require.NoError(t, err)
	assert.False(t, resp.IsFavorite)
}

func TestFavoriteListBuildsSummaries(t *testing.T) {
	creator := testCreator("c1", "Alice", "Martin", 48.85, 2.35)
	favoriteRepo := &fakeFavoriteRepo{
		byUser: []models.Favorite{
			{CreatorID: "c1", UserID: "u1", Note: "great reels", Creator: &creator},
		},
	}
	svc := NewFavoriteService(favoriteRepo, &fakeCreatorRepo{}, fakeStorage{})

	resp, err := svc.List(context.Background(), nil, Requester{UserID: "u1", Role: models.UserRoleClient})
	require.NoError(t, err)

	require.Len(t, resp, 1)
	assert.Equal(t, "great reels", resp[0].Note)
	require.NotNil(t, resp[0].Creator)
	assert.True(t, resp[0].Creator.IsFavorite)
	assert.Equal(t, "Alice M.", resp[0].Creator.DisplayName)
}

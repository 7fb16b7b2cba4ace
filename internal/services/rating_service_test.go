package services

import (
	"testing"

	"neads_backend/internal/models"
	"neads_backend/internal/services/dto"
	"neads_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingCreateDeniedForClients(t *testing.T) {
	svc := NewRatingService(&fakeRatingRepo{}, &fakeCreatorRepo{})

	_, err := svc.Create(nil, Requester{UserID: "u1", Role: models.UserRoleClient}, &dto.CreateRatingRequest{
		CreatorID: "c1",
		Score:     5,
	})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestRatingCreateUnknownCreator(t *testing.T) {
	svc := NewRatingService(&fakeRatingRepo{}, &fakeCreatorRepo{})

	_, err := svc.Create(nil, Requester{UserID: "u1", Role: models.UserRoleAdmin}, &dto.CreateRatingRequest{
		CreatorID: "missing",
		Score:     4,
	})

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestRatingUpdateOnlyOwnerOrAdmin(t *testing.T) {
	ratingRepo := &fakeRatingRepo{
		ratings: map[string]*models.Rating{
			"r1": {CreatorID: "c1", RaterID: "author", Score: 3},
		},
	}
	svc := NewRatingService(ratingRepo, &fakeCreatorRepo{})

	score := 5
	_, err := svc.Update(nil, Requester{UserID: "intruder", Role: models.UserRoleConsultant}, "r1", &dto.UpdateRatingRequest{
		Score: &score,
	})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestRatingDeleteOnlyOwnerOrAdmin(t *testing.T) {
	ratingRepo := &fakeRatingRepo{
		ratings: map[string]*models.Rating{
			"r1": {CreatorID: "c1", RaterID: "author", Score: 3},
		},
	}
	svc := NewRatingService(ratingRepo, &fakeCreatorRepo{})

	err := svc.Delete(nil, Requester{UserID: "intruder", Role: models.UserRoleConsultant}, "r1")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestRatingBreakdown(t *testing.T) {
	creator := testCreator("c1", "Alice", "Martin", 48.85, 2.35)
	creator.AverageRating = 4.33
	creator.TotalRatings = 3

	ratingRepo := &fakeRatingRepo{
		ratings: map[string]*models.Rating{
			"r1": {CreatorID: "c1", RaterID: "u1", Score: 5},
			"r2": {CreatorID: "c1", RaterID: "u2", Score: 5},
			"r3": {CreatorID: "c1", RaterID: "u3", Score: 3},
			"r4": {CreatorID: "other", RaterID: "u4", Score: 1},
		},
	}
	creatorRepo := &fakeCreatorRepo{creators: map[string]*models.Creator{"c1": &creator}}
	svc := NewRatingService(ratingRepo, creatorRepo)

	resp, err := svc.Breakdown(nil, "c1")
	require.NoError(t, err)

	assert.Equal(t, 4.33, resp.AverageRating)
	assert.Equal(t, 3, resp.TotalRatings)
	assert.Equal(t, int64(2), resp.Breakdown[5])
	assert.Equal(t, int64(1), resp.Breakdown[3])
	assert.Len(t, resp.Ratings, 3)
}

package services

import (
	"context"
	"testing"

	"neads_backend/internal/models"
	"neads_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference point: central Paris.
const (
	parisLat = 48.8566
	parisLng = 2.3522
)

func TestMapSearchRejectsInvalidCoordinates(t *testing.T) {
	svc := NewGeoService(&fakeCreatorRepo{}, &fakeFavoriteRepo{}, fakeStorage{})

	_, err := svc.MapSearch(context.Background(), nil, 91.0, 2.35, 50, &models.CreatorSearchCriteria{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)

	_, err = svc.MapSearch(context.Background(), nil, 48.85, -181.0, 50, &models.CreatorSearchCriteria{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
}

func TestMapSearchAppliesDefaultRadius(t *testing.T) {
	svc := NewGeoService(&fakeCreatorRepo{}, &fakeFavoriteRepo{}, fakeStorage{})

	result, err := svc.MapSearch(context.Background(), nil, parisLat, parisLng, 0, &models.CreatorSearchCriteria{}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultRadiusKM, result.RadiusKM)
}

func TestMapSearchFiltersByRadiusAndSortsByDistance(t *testing.T) {
	creatorRepo := &fakeCreatorRepo{
		located: []models.Creator{
			// Orléans, roughly 110 km away.
			testCreator("far", "Far", "Away", 47.9029, 1.9093),
			// Saint-Denis, under 10 km.
			testCreator("near", "Near", "By", 48.9362, 2.3574),
			// Versailles, under 20 km.
			testCreator("mid", "Mid", "Way", 48.8049, 2.1204),
		},
	}
	svc := NewGeoService(creatorRepo, &fakeFavoriteRepo{}, fakeStorage{})

	result, err := svc.MapSearch(context.Background(), nil, parisLat, parisLng, 50, &models.CreatorSearchCriteria{}, nil)
	require.NoError(t, err)

	require.Len(t, result.Creators, 2)
	assert.Equal(t, "near", result.Creators[0].ID)
	assert.Equal(t, "mid", result.Creators[1].ID)
	assert.Equal(t, 2, result.Total)
	assert.Less(t, result.Creators[0].DistanceKM, result.Creators[1].DistanceKM)
}

func TestMapSearchRoundsDistanceToOneDecimal(t *testing.T) {
	creatorRepo := &fakeCreatorRepo{
		located: []models.Creator{
			testCreator("near", "Near", "By", 48.9362, 2.3574),
		},
	}
	svc := NewGeoService(creatorRepo, &fakeFavoriteRepo{}, fakeStorage{})

	result, err := svc.MapSearch(context.Background(), nil, parisLat, parisLng, 50, &models.CreatorSearchCriteria{}, nil)
	require.NoError(t, err)
	require.Len(t, result.Creators, 1)

	distance := result.Creators[0].DistanceKM
	assert.InDelta(t, distance, float64(int(distance*10))/10, 0.001)
	assert.Greater(t, distance, 0.0)
}

func TestMapSearchAppliesCriteria(t *testing.T) {
	male := testCreator("m", "Marc", "Petit", 48.86, 2.35)
	male.Gender = models.GenderMale
	creatorRepo := &fakeCreatorRepo{
		located: []models.Creator{
			male,
			testCreator("f", "Alice", "Martin", 48.86, 2.35),
		},
	}
	svc := NewGeoService(creatorRepo, &fakeFavoriteRepo{}, fakeStorage{})

	result, err := svc.MapSearch(context.Background(), nil, parisLat, parisLng, 50, &models.CreatorSearchCriteria{
		Gender: string(models.GenderFemale),
	}, nil)
	require.NoError(t, err)

	require.Len(t, result.Creators, 1)
	assert.Equal(t, "f", result.Creators[0].ID)
}

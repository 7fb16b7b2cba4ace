package integration_test

import (
	"fmt"
	"testing"

	"neads_backend/internal/models"
	"neads_backend/internal/repositories"
	"neads_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaCapRejectsEleventhImage(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	creator := helpers.CreateTestCreator(t, ts.DB, "Alice", "Martin", "Paris", nil, nil)
	repo := repositories.NewMediaRepository()

	for i := 0; i < models.MaxMediaPerType; i++ {
		err := repo.Create(ts.DB, &models.Media{
			CreatorID:   creator.ID,
			Type:        models.MediaTypeImage,
			FilePath:    fmt.Sprintf("creators/%s/image/%d.jpg", creator.ID, i),
			ContentType: "image/jpeg",
		})
		require.NoError(t, err)
	}

	err := repo.Create(ts.DB, &models.Media{
		CreatorID:   creator.ID,
		Type:        models.MediaTypeImage,
		FilePath:    "creators/" + creator.ID + "/image/one-too-many.jpg",
		ContentType: "image/jpeg",
	})
	require.ErrorIs(t, err, repositories.ErrMediaLimitReached)

	// The existing gallery is untouched.
	count, err := repo.CountByType(ts.DB, creator.ID, models.MediaTypeImage)
	require.NoError(t, err)
	assert.EqualValues(t, models.MaxMediaPerType, count)
}

func TestMediaCapCountsTypesIndependently(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	creator := helpers.CreateTestCreator(t, ts.DB, "Alice", "Martin", "Paris", nil, nil)
	repo := repositories.NewMediaRepository()

	for i := 0; i < models.MaxMediaPerType; i++ {
		err := repo.Create(ts.DB, &models.Media{
			CreatorID:   creator.ID,
			Type:        models.MediaTypeImage,
			FilePath:    fmt.Sprintf("creators/%s/image/%d.jpg", creator.ID, i),
			ContentType: "image/jpeg",
		})
		require.NoError(t, err)
	}

	// A full image gallery does not block the first video.
	err := repo.Create(ts.DB, &models.Media{
		CreatorID:   creator.ID,
		Type:        models.MediaTypeVideo,
		FilePath:    "creators/" + creator.ID + "/video/reel.mp4",
		ContentType: "video/mp4",
	})
	require.NoError(t, err)

	count, err := repo.CountByType(ts.DB, creator.ID, models.MediaTypeVideo)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

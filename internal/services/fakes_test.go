package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"neads_backend/internal/models"
	"neads_backend/internal/repositories"

	"gorm.io/gorm"
)

// Embedding the interface keeps the fakes small; calling a method a test
// did not stub panics, which is the failure we want.

type fakeCreatorRepo struct {
	repositories.CreatorRepository
	creators map[string]*models.Creator
	located  []models.Creator
	searchFn func(criteria *models.CreatorSearchCriteria) ([]models.Creator, int64, error)
}

func (f *fakeCreatorRepo) FindByID(db *gorm.DB, id string) (*models.Creator, error) {
	if c, ok := f.creators[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrCreatorNotFound
}

func (f *fakeCreatorRepo) Search(db *gorm.DB, criteria *models.CreatorSearchCriteria) ([]models.Creator, int64, error) {
	if f.searchFn != nil {
		return f.searchFn(criteria)
	}
	return nil, 0, nil
}

func (f *fakeCreatorRepo) FindLocated(db *gorm.DB) ([]models.Creator, error) {
	return f.located, nil
}

type fakeFavoriteRepo struct {
	repositories.FavoriteRepository
	favorites map[string]bool
	byUser    []models.Favorite
}

func (f *fakeFavoriteRepo) IDsOf(db *gorm.DB, userID string) (map[string]bool, error) {
	if f.favorites == nil {
		return map[string]bool{}, nil
	}
	return f.favorites, nil
}

func (f *fakeFavoriteRepo) FindByUser(db *gorm.DB, userID string) ([]models.Favorite, error) {
	return f.byUser, nil
}

func (f *fakeFavoriteRepo) Toggle(db *gorm.DB, creatorID, userID string) (bool, error) {
	if f.favorites == nil {
		f.favorites = map[string]bool{}
	}
	f.favorites[creatorID] = !f.favorites[creatorID]
	return f.favorites[creatorID], nil
}

type fakeRatingRepo struct {
	repositories.RatingRepository
	ratings map[string]*models.Rating
}

func (f *fakeRatingRepo) FindByID(db *gorm.DB, id string) (*models.Rating, error) {
	if r, ok := f.ratings[id]; ok {
		return r, nil
	}
	return nil, repositories.ErrRatingNotFound
}

func (f *fakeRatingRepo) Breakdown(db *gorm.DB, creatorID string) (map[int]int64, error) {
	counts := map[int]int64{}
	for _, r := range f.ratings {
		if r.CreatorID == creatorID {
			counts[r.Score]++
		}
	}
	return counts, nil
}

func (f *fakeRatingRepo) FindByCreator(db *gorm.DB, creatorID string) ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range f.ratings {
		if r.CreatorID == creatorID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeMediaRepo struct {
	repositories.MediaRepository
	media []models.Media
}

func (f *fakeMediaRepo) FindByCreator(db *gorm.DB, creatorID string) ([]models.Media, error) {
	return f.media, nil
}

func (f *fakeMediaRepo) FindByID(db *gorm.DB, id string) (*models.Media, error) {
	for i := range f.media {
		if f.media[i].ID == id {
			return &f.media[i], nil
		}
	}
	return nil, repositories.ErrMediaNotFound
}

// fakeStorage answers URL lookups without touching a filesystem.
type fakeStorage struct{}

func (fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	return nil
}

func (fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("not stored: %s", path)
}

func (fakeStorage) Delete(ctx context.Context, path string) error { return nil }

func (fakeStorage) Exists(ctx context.Context, path string) (bool, error) { return false, nil }

func (fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "https://cdn.test/" + path, nil
}

func (fakeStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "https://cdn.test/" + path + "?signed", nil
}

func (fakeStorage) GetSize(ctx context.Context, path string) (int64, error) { return 0, nil }

func testCreator(id, firstName, lastName string, lat, lng float64) models.Creator {
	c := models.Creator{
		FirstName: firstName,
		LastName:  lastName,
		Age:       25,
		Gender:    models.GenderFemale,
		Location: &models.Location{
			City:      "Paris",
			Country:   "France",
			Latitude:  &lat,
			Longitude: &lng,
		},
	}
	c.ID = id
	return c
}

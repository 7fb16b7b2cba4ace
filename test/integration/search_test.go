package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"neads_backend/internal/models"
	"neads_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type galleryPage struct {
	Data []struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
		IsFavorite  bool   `json:"is_favorite"`
	} `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func TestGalleryFiltersByGender(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	female := helpers.CreateTestCreator(t, ts.DB, "Alice", "Martin", "Paris", nil, nil)
	male := helpers.CreateTestCreator(t, ts.DB, "Marc", "Petit", "Paris", nil, nil)
	require.NoError(t, ts.DB.Model(&models.Creator{}).Where("id = ?", male.ID).Update("gender", models.GenderMale).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/creators?gender=F", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var page galleryPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, female.ID, page.Data[0].ID)
	assert.Equal(t, "Alice M.", page.Data[0].DisplayName)
}

func TestGalleryRejectsInvalidAgeRange(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/creators?min_age=40&max_age=20", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGalleryIgnoresMalformedFilters(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	creator := helpers.CreateTestCreator(t, ts.DB, "Alice", "Martin", "Paris", nil, nil)

	// Values that do not parse narrow nothing.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/creators?min_age=abc&min_rating=high&can_invoice=maybe&gender=banana", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var page galleryPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, creator.ID, page.Data[0].ID)
}

func TestSearchScansBioButGalleryDoesNot(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	creator := helpers.CreateTestCreator(t, ts.DB, "Alice", "Martin", "Paris", nil, nil)
	require.NoError(t, ts.DB.Model(&models.Creator{}).Where("id = ?", creator.ID).Update("bio", "Travel vlogs and city guides").Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/creators?query=travel", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var gallery galleryPage
	require.NoError(t, json.Unmarshal([]byte(body), &gallery))
	assert.Empty(t, gallery.Data)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/search/creators?query=travel", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var search galleryPage
	require.NoError(t, json.Unmarshal([]byte(body), &search))
	require.Len(t, search.Data, 1)
	assert.Equal(t, creator.ID, search.Data[0].ID)
}

func TestFavoritesFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	liked := helpers.CreateTestCreator(t, ts.DB, "Alice", "Martin", "Paris", nil, nil)
	helpers.CreateTestCreator(t, ts.DB, "Lea", "Bernard", "Lyon", nil, nil)

	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, helpers.UniqueEmail("client"), "password123", models.UserRoleClient)

	// Anonymous favorites_only is rejected.
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/creators?favorites_only=true", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/creators/"+liked.ID+"/favorite", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var toggle struct {
		IsFavorite bool `json:"is_favorite"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &toggle))
	assert.True(t, toggle.IsFavorite)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/creators?favorites_only=true", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var page galleryPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, liked.ID, page.Data[0].ID)
	assert.True(t, page.Data[0].IsFavorite)

	// Toggling again removes the favorite.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/creators/"+liked.ID+"/favorite", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &toggle))
	assert.False(t, toggle.IsFavorite)
}

func TestGalleryPagination(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	for i := 0; i < 3; i++ {
		helpers.CreateTestCreator(t, ts.DB, "Alice", "Martin", "Paris", nil, nil)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/creators?page=1&page_size=2", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var page galleryPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

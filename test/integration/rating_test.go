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

func TestConsultantRatingIsAutoVerifiedAndAggregated(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	creator := helpers.CreateTestCreator(t, ts.DB, "Alice", "Martin", "Paris", nil, nil)
	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, helpers.UniqueEmail("consultant"), "password123", models.UserRoleConsultant)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/ratings", token, map[string]interface{}{
		"creator_id": creator.ID,
		"score":      5,
		"comment":    "Reliable, fast delivery",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var rating struct {
		ID         string `json:"id"`
		IsVerified bool   `json:"is_verified"`
		Score      int    `json:"score"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &rating))
	assert.True(t, rating.IsVerified, "staff ratings are verified on creation")
	assert.Equal(t, 5, rating.Score)

	// The stored aggregate is refreshed in the same transaction.
	var stored models.Creator
	require.NoError(t, ts.DB.First(&stored, "id = ?", creator.ID).Error)
	assert.Equal(t, 5.0, stored.AverageRating)
	assert.Equal(t, 1, stored.TotalRatings)

	// One rating per (creator, rater).
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/ratings", token, map[string]interface{}{
		"creator_id": creator.ID,
		"score":      4,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestClientsCannotRate(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	creator := helpers.CreateTestCreator(t, ts.DB, "Alice", "Martin", "Paris", nil, nil)
	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, helpers.UniqueEmail("client"), "password123", models.UserRoleClient)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/ratings", token, map[string]interface{}{
		"creator_id": creator.ID,
		"score":      5,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRatingDeleteRecomputesAggregate(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	creator := helpers.CreateTestCreator(t, ts.DB, "Alice", "Martin", "Paris", nil, nil)
	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, helpers.UniqueEmail("consultant"), "password123", models.UserRoleConsultant)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/ratings", token, map[string]interface{}{
		"creator_id": creator.ID,
		"score":      4,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var rating struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &rating))

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/ratings/"+rating.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stored models.Creator
	require.NoError(t, ts.DB.First(&stored, "id = ?", creator.ID).Error)
	assert.Equal(t, 0.0, stored.AverageRating)
	assert.Equal(t, 0, stored.TotalRatings)
}

func TestRatingBreakdownEndpoint(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	creator := helpers.CreateTestCreator(t, ts.DB, "Alice", "Martin", "Paris", nil, nil)

	consultantToken, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, helpers.UniqueEmail("consultant"), "password123", models.UserRoleConsultant)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, helpers.UniqueEmail("admin"), "password123", models.UserRoleAdmin)

	for token, score := range map[string]int{consultantToken: 5, adminToken: 3} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/ratings", token, map[string]interface{}{
			"creator_id": creator.ID,
			"score":      score,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/creators/"+creator.ID+"/ratings", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var breakdown struct {
		AverageRating float64          `json:"average_rating"`
		TotalRatings  int              `json:"total_ratings"`
		Breakdown     map[string]int64 `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &breakdown))
	assert.Equal(t, 4.0, breakdown.AverageRating)
	assert.Equal(t, 2, breakdown.TotalRatings)
	assert.Equal(t, int64(1), breakdown.Breakdown["5"])
	assert.Equal(t, int64(1), breakdown.Breakdown["3"])
}

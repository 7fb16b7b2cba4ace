package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"neads_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestMapSearchReturnsNearbyCreatorsSorted(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	// Saint-Denis and Versailles are inside a 50 km radius of central
	// Paris; Orléans is not. The last creator has no coordinates at all.
	near := helpers.CreateTestCreator(t, ts.DB, "Near", "By", "Saint-Denis", floatPtr(48.9362), floatPtr(2.3574))
	mid := helpers.CreateTestCreator(t, ts.DB, "Mid", "Way", "Versailles", floatPtr(48.8049), floatPtr(2.1204))
	helpers.CreateTestCreator(t, ts.DB, "Far", "Away", "Orleans", floatPtr(47.9029), floatPtr(1.9093))
	helpers.CreateTestCreator(t, ts.DB, "No", "Where", "Paris", nil, nil)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/map/creators?lat=48.8566&lng=2.3522&radius=50", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Creators []struct {
			ID         string  `json:"id"`
			DistanceKM float64 `json:"distance_km"`
			Latitude   float64 `json:"latitude"`
		} `json:"creators"`
		Total    int     `json:"total"`
		RadiusKM float64 `json:"radius_km"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Len(t, resp.Creators, 2)
	assert.Equal(t, near.ID, resp.Creators[0].ID)
	assert.Equal(t, mid.ID, resp.Creators[1].ID)
	assert.Less(t, resp.Creators[0].DistanceKM, resp.Creators[1].DistanceKM)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 50.0, resp.RadiusKM)
}

func TestMapSearchDefaultsRadius(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/map/creators?lat=48.8566&lng=2.3522", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		RadiusKM float64 `json:"radius_km"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 50.0, resp.RadiusKM)
}

func TestMapSearchRequiresCoordinates(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/map/creators", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/map/creators?lat=91&lng=0", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestMapSearchRejectsMalformedRadius(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	// Omitting the radius falls back to the default; garbage does not.
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/map/creators?lat=48.8566&lng=2.3522&radius=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

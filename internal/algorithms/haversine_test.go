package algorithms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKM(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lng1 float64
		lat2, lng2 float64
		wantKM     float64
		tolerance  float64
	}{
		{
			name: "paris to lyon",
			lat1: 48.8566, lng1: 2.3522,
			lat2: 45.7640, lng2: 4.8357,
			wantKM:    392,
			tolerance: 5,
		},
		{
			name: "same point",
			lat1: 48.8566, lng1: 2.3522,
			lat2: 48.8566, lng2: 2.3522,
			wantKM:    0,
			tolerance: 0.001,
		},
		{
			name: "paris to marseille",
			lat1: 48.8566, lng1: 2.3522,
			lat2: 43.2965, lng2: 5.3698,
			wantKM:    660,
			tolerance: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKM(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.wantKM, got, tt.tolerance)
		})
	}
}

func TestHaversineKMSymmetry(t *testing.T) {
	ab := HaversineKM(48.8566, 2.3522, 45.7640, 4.8357)
	ba := HaversineKM(45.7640, 4.8357, 48.8566, 2.3522)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{"valid paris", 48.8566, 2.3522, false},
		{"lat boundary", 90, 180, false},
		{"lat too high", 90.1, 0, true},
		{"lat too low", -90.1, 0, true},
		{"lng too high", 0, 180.1, true},
		{"lng too low", 0, -180.1, true},
		{"nan lat", math.NaN(), 0, true},
		{"inf lng", 0, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinates(tt.lat, tt.lng)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCoordinate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 392.2, Round(392.2173, 1))
	assert.Equal(t, 4.33, Round(13.0/3.0, 2))
	assert.Equal(t, 0.0, Round(0, 2))
}

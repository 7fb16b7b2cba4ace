package algorithms

import (
	"testing"

	"neads_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func ratingsWithScores(scores ...int) []models.Rating {
	ratings := make([]models.Rating, 0, len(scores))
	for _, s := range scores {
		ratings = append(ratings, models.Rating{Score: s})
	}
	return ratings
}

func TestRatingAggregate(t *testing.T) {
	tests := []struct {
		name      string
		scores    []int
		wantAvg   float64
		wantTotal int
	}{
		{"empty set", nil, 0, 0},
		{"single rating", []int{5}, 5, 1},
		{"three ratings", []int{5, 4, 3}, 4.00, 3},
		{"after deleting the 3", []int{5, 4}, 4.50, 2},
		{"rounds to two decimals", []int{5, 4, 4}, 4.33, 3},
		{"all minimum", []int{1, 1, 1}, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, total := RatingAggregate(ratingsWithScores(tt.scores...))
			assert.Equal(t, tt.wantAvg, avg)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

// Recomputing from the same set must always yield the same aggregate,
// regardless of how many times the maintainer runs.
func TestRatingAggregateIdempotent(t *testing.T) {
	set := ratingsWithScores(5, 4, 3, 2)

	avg1, total1 := RatingAggregate(set)
	avg2, total2 := RatingAggregate(set)

	assert.Equal(t, avg1, avg2)
	assert.Equal(t, total1, total2)
}

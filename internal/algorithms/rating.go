package algorithms

import "neads_backend/internal/models"

// RatingAggregate computes the stored aggregate for a creator's full
// rating set: the mean score rounded to 2 decimals and the count. An
// empty set yields (0, 0).
func RatingAggregate(ratings []models.Rating) (average float64, total int) {
	if len(ratings) == 0 {
		return 0, 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	average = Round(float64(sum)/float64(len(ratings)), 2)
	return average, len(ratings)
}

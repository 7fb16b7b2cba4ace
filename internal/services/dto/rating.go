package dto

import "time"

// ======================
// Request DTOs
// ======================

type CreateRatingRequest struct {
	CreatorID string `json:"creator_id" validate:"required"`
	Score     int    `json:"score" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"omitempty,max=2000"`
}

type UpdateRatingRequest struct {
	Score   *int    `json:"score,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

// ======================
// Response DTOs
// ======================

type RatingResponse struct {
	ID         string    `json:"id"`
	CreatorID  string    `json:"creator_id"`
	RaterID    string    `json:"rater_id"`
	Score      int       `json:"score"`
	Comment    string    `json:"comment,omitempty"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RatingBreakdownResponse feeds the detail page: the stored aggregate
// plus per-star counts.
type RatingBreakdownResponse struct {
	AverageRating float64           `json:"average_rating"`
	TotalRatings  int               `json:"total_ratings"`
	Breakdown     map[int]int64     `json:"breakdown"`
	Ratings       []*RatingResponse `json:"ratings"`
}

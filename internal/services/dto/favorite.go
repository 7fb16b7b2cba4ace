package dto

import "time"

type UpdateFavoriteNoteRequest struct {
	Note string `json:"note" validate:"max=1000"`
}

type ToggleFavoriteResponse struct {
	CreatorID  string `json:"creator_id"`
	IsFavorite bool   `json:"is_favorite"`
}

type FavoriteResponse struct {
	CreatorID string          `json:"creator_id"`
	Note      string          `json:"note,omitempty"`
	Creator   *CreatorSummary `json:"creator,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

package dto

import "time"

// ======================
// Request DTOs
// ======================

// UploadMediaRequest carries the multipart form fields; the file itself
// arrives separately.
type UploadMediaRequest struct {
	Type  string `form:"type" validate:"required,is-media-type"`
	Title string `form:"title" validate:"omitempty,max=200"`
}

type ReorderMediaRequest struct {
	MediaIDs []string `json:"media_ids" validate:"required,min=1"`
}

// ======================
// Response DTOs
// ======================

type MediaResponse struct {
	ID           string    `json:"id"`
	CreatorID    string    `json:"creator_id"`
	Type         string    `json:"type"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Title        string    `json:"title,omitempty"`
	OrderIndex   int       `json:"order_index"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// MediaListResponse groups a creator's portfolio by type.
type MediaListResponse struct {
	Images []*MediaResponse `json:"images"`
	Videos []*MediaResponse `json:"videos"`
}

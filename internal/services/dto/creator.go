package dto

import "time"

// ======================
// Request DTOs
// ======================

type LocationPayload struct {
	City       string   `json:"city" validate:"omitempty,max=100"`
	Country    string   `json:"country" validate:"omitempty,max=100"`
	PostalCode string   `json:"postal_code" validate:"omitempty,max=20"`
	Latitude   *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

type CreateCreatorRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Age       int    `json:"age" validate:"required,min=13,max=100"`
	Gender    string `json:"gender" validate:"required,is-gender"`
	Bio       string `json:"bio" validate:"omitempty,max=2000"`

	Instagram    string `json:"instagram" validate:"omitempty,max=200"`
	Tiktok       string `json:"tiktok" validate:"omitempty,max=200"`
	Youtube      string `json:"youtube" validate:"omitempty,max=200"`
	PortfolioURL string `json:"portfolio_url" validate:"omitempty,url"`

	Equipment       string   `json:"equipment" validate:"omitempty,max=500"`
	DeliveryTime    string   `json:"delivery_time" validate:"omitempty,max=100"`
	Mobility        bool     `json:"mobility"`
	CanInvoice      bool     `json:"can_invoice"`
	PreviousClients []string `json:"previous_clients" validate:"omitempty,max=50"`

	Location     *LocationPayload `json:"location,omitempty"`
	Domains      []string         `json:"domains" validate:"omitempty,max=20"`
	ContentTypes []string         `json:"content_types" validate:"omitempty,max=20"`
}

type UpdateCreatorRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Age       *int    `json:"age,omitempty" validate:"omitempty,min=13,max=100"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,is-gender"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=2000"`

	Instagram    *string `json:"instagram,omitempty" validate:"omitempty,max=200"`
	Tiktok       *string `json:"tiktok,omitempty" validate:"omitempty,max=200"`
	Youtube      *string `json:"youtube,omitempty" validate:"omitempty,max=200"`
	PortfolioURL *string `json:"portfolio_url,omitempty" validate:"omitempty,url"`

	Equipment       *string   `json:"equipment,omitempty" validate:"omitempty,max=500"`
	DeliveryTime    *string   `json:"delivery_time,omitempty" validate:"omitempty,max=100"`
	Mobility        *bool     `json:"mobility,omitempty"`
	CanInvoice      *bool     `json:"can_invoice,omitempty"`
	PreviousClients *[]string `json:"previous_clients,omitempty" validate:"omitempty,max=50"`

	Location     *LocationPayload `json:"location,omitempty"`
	Domains      *[]string        `json:"domains,omitempty" validate:"omitempty,max=20"`
	ContentTypes *[]string        `json:"content_types,omitempty" validate:"omitempty,max=20"`
}

type VerifyCreatorRequest struct {
	Verified bool `json:"verified"`
}

// ======================
// Response DTOs
// ======================

type LocationResponse struct {
	City       string   `json:"city"`
	Country    string   `json:"country"`
	PostalCode string   `json:"postal_code,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// CreatorResponse is the detail view. Personal fields are omitted when
// the requester's view policy hides them.
type CreatorResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Bio         string `json:"bio"`

	Instagram    string `json:"instagram,omitempty"`
	Tiktok       string `json:"tiktok,omitempty"`
	Youtube      string `json:"youtube,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`

	Equipment       string   `json:"equipment,omitempty"`
	DeliveryTime    string   `json:"delivery_time,omitempty"`
	Mobility        bool     `json:"mobility"`
	CanInvoice      bool     `json:"can_invoice"`
	PreviousClients []string `json:"previous_clients,omitempty"`

	AverageRating   float64 `json:"average_rating"`
	TotalRatings    int     `json:"total_ratings"`
	VerifiedByNeads bool    `json:"verified_by_neads"`

	Location     *LocationResponse `json:"location,omitempty"`
	Domains      []string          `json:"domains"`
	ContentTypes []string          `json:"content_types"`
	Media        []*MediaResponse  `json:"media,omitempty"`

	IsFavorite   bool       `json:"is_favorite,omitempty"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CreatorSummary is the list/card view used by gallery, search and map
// results.
type CreatorSummary struct {
	ID              string            `json:"id"`
	DisplayName     string            `json:"display_name"`
	Age             int               `json:"age"`
	Gender          string            `json:"gender"`
	AverageRating   float64           `json:"average_rating"`
	TotalRatings    int               `json:"total_ratings"`
	VerifiedByNeads bool              `json:"verified_by_neads"`
	CanInvoice      bool              `json:"can_invoice"`
	Domains         []string          `json:"domains"`
	Location        *LocationResponse `json:"location,omitempty"`
	ThumbnailURL    string            `json:"thumbnail_url,omitempty"`
	IsFavorite      bool              `json:"is_favorite,omitempty"`
}

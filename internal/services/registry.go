package services

import (
	"neads_backend/internal/email"
	"neads_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService     AuthService
	UserService     UserService
	CreatorService  CreatorService
	SearchService   SearchService
	GeoService      GeoService
	MediaService    MediaService
	RatingService   RatingService
	FavoriteService FavoriteService
	TaxonomyService TaxonomyService
	EmailProvider   email.Provider
	Storage         storage.Storage
}

package handlers

import (
	"neads_backend/internal/services"
	"neads_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Creator  *CreatorHandler
	Search   *SearchHandler
	Map      *MapHandler
	Media    *MediaHandler
	Rating   *RatingHandler
	Favorite *FavoriteHandler
	Taxonomy *TaxonomyHandler
	File     *FileHandler
}

func NewAppHandlers(v *validator.Validator, svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:     NewAuthHandler(base, svc.AuthService),
		User:     NewUserHandler(base, svc.UserService),
		Creator:  NewCreatorHandler(base, svc.CreatorService),
		Search:   NewSearchHandler(base, svc.SearchService),
		Map:      NewMapHandler(base, svc.GeoService),
		Media:    NewMediaHandler(base, svc.MediaService),
		Rating:   NewRatingHandler(base, svc.RatingService),
		Favorite: NewFavoriteHandler(base, svc.FavoriteService),
		Taxonomy: NewTaxonomyHandler(base, svc.TaxonomyService),
		File:     NewFileHandler(base, svc.Storage),
	}
}

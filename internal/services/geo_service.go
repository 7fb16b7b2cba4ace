package services

import (
	"context"
	"sort"

	"neads_backend/internal/algorithms"
	"neads_backend/internal/auth"
	"neads_backend/internal/models"
	"neads_backend/internal/repositories"
	"neads_backend/internal/services/dto"
	"neads_backend/internal/storage"
	"neads_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// DefaultRadiusKM is applied when the map request omits the radius.
const DefaultRadiusKM = 50.0

type GeoService interface {
	// MapSearch returns the creators within radiusKM of the point,
	// closest first. Creators without coordinates never appear.
	MapSearch(ctx context.Context, db *gorm.DB, lat, lng, radiusKM float64, criteria *models.CreatorSearchCriteria, requester *Requester) (*dto.MapSearchResponse, error)
}

type geoService struct {
	creatorRepo  repositories.CreatorRepository
	favoriteRepo repositories.FavoriteRepository
	store        storage.Storage
}

func NewGeoService(creatorRepo repositories.CreatorRepository, favoriteRepo repositories.FavoriteRepository, store storage.Storage) GeoService {
	return &geoService{
		creatorRepo:  creatorRepo,
		favoriteRepo: favoriteRepo,
		store:        store,
	}
}

func (s *geoService) MapSearch(ctx context.Context, db *gorm.DB, lat, lng, radiusKM float64, criteria *models.CreatorSearchCriteria, requester *Requester) (*dto.MapSearchResponse, error) {
	if err := algorithms.ValidateCoordinates(lat, lng); err != nil {
		return nil, apperrors.ErrInvalidCoordinates
	}
	if radiusKM <= 0 {
		radiusKM = DefaultRadiusKM
	}

	if err := validateSearchCriteria(criteria); err != nil {
		return nil, err
	}
	criteria.Domains = algorithms.DedupeDomains(criteria.Domains)

	if criteria.FavoritesOnly {
		if requester == nil {
			return nil, apperrors.NewUnauthorizedError("Authentication required to filter by favorites")
		}
		criteria.FavoritesOf = requester.UserID
	}

	creators, err := s.creatorRepo.FindLocated(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	favorites := map[string]bool{}
	role := models.UserRole("")
	if requester != nil {
		role = requester.Role
		favorites, err = s.favoriteRepo.IDsOf(db, requester.UserID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	policy := auth.PolicyFor(role, false)

	hits := make([]*dto.MapCreatorResponse, 0)
	for i := range creators {
		creator := &creators[i]
		if !algorithms.Matches(creator, criteria, favorites) {
			continue
		}

		distance := algorithms.HaversineKM(lat, lng, *creator.Location.Latitude, *creator.Location.Longitude)
		if distance > radiusKM {
			continue
		}

		hits = append(hits, &dto.MapCreatorResponse{
			CreatorSummary: *buildCreatorSummary(ctx, s.store, creator, policy, favorites[creator.ID]),
			Latitude:       *creator.Location.Latitude,
			Longitude:      *creator.Location.Longitude,
			DistanceKM:     algorithms.Round(distance, 1),
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].DistanceKM < hits[j].DistanceKM
	})

	return &dto.MapSearchResponse{
		Creators: hits,
		Total:    len(hits),
		RadiusKM: radiusKM,
	}, nil
}

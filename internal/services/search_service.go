package services

import (
	"context"

	"neads_backend/internal/algorithms"
	"neads_backend/internal/auth"
	"neads_backend/internal/models"
	"neads_backend/internal/repositories"
	"neads_backend/internal/services/dto"
	"neads_backend/internal/storage"
	"neads_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// SearchService backs the gallery and search endpoints. Both share the
// same criteria; the handler decides whether the free-text query also
// scans the bio.
type SearchService interface {
	Search(ctx context.Context, db *gorm.DB, criteria *models.CreatorSearchCriteria, requester *Requester) (*models.PaginatedResponse, error)
}

type searchService struct {
	creatorRepo  repositories.CreatorRepository
	favoriteRepo repositories.FavoriteRepository
	store        storage.Storage
}

func NewSearchService(creatorRepo repositories.CreatorRepository, favoriteRepo repositories.FavoriteRepository, store storage.Storage) SearchService {
	return &searchService{
		creatorRepo:  creatorRepo,
		favoriteRepo: favoriteRepo,
		store:        store,
	}
}

func (s *searchService) Search(ctx context.Context, db *gorm.DB, criteria *models.CreatorSearchCriteria, requester *Requester) (*models.PaginatedResponse, error) {
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

	criteria.Page, criteria.PageSize = normalizePagination(criteria.Page, criteria.PageSize)

	creators, total, err := s.creatorRepo.Search(db, criteria)
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

	summaries := make([]*dto.CreatorSummary, 0, len(creators))
	for i := range creators {
		summaries = append(summaries, buildCreatorSummary(ctx, s.store, &creators[i], policy, favorites[creators[i].ID]))
	}

	return &models.PaginatedResponse{
		Data:       summaries,
		Total:      total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
		TotalPages: calculateTotalPages(total, criteria.PageSize),
	}, nil
}

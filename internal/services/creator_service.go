package services

import (
	"context"

	"neads_backend/internal/algorithms"
	"neads_backend/internal/auth"
	"neads_backend/internal/logger"
	"neads_backend/internal/models"
	"neads_backend/internal/repositories"
	"neads_backend/internal/services/dto"
	"neads_backend/internal/storage"
	"neads_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const cityAutocompleteLimit = 20

type CreatorService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateCreatorRequest, ownerUserID *string) (*dto.CreatorResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string, requester *Requester) (*dto.CreatorResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateCreatorRequest, requester Requester) (*dto.CreatorResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string, requester Requester) error
	SetVerified(db *gorm.DB, id string, verified bool, requester Requester) error
	Cities(db *gorm.DB, prefix string) ([]string, error)
}

type creatorService struct {
	creatorRepo  repositories.CreatorRepository
	taxonomyRepo repositories.TaxonomyRepository
	favoriteRepo repositories.FavoriteRepository
	store        storage.Storage
}

func NewCreatorService(
	creatorRepo repositories.CreatorRepository,
	taxonomyRepo repositories.TaxonomyRepository,
	favoriteRepo repositories.FavoriteRepository,
	store storage.Storage,
) CreatorService {
	return &creatorService{
		creatorRepo:  creatorRepo,
		taxonomyRepo: taxonomyRepo,
		favoriteRepo: favoriteRepo,
		store:        store,
	}
}

func (s *creatorService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateCreatorRequest, ownerUserID *string) (*dto.CreatorResponse, error) {
	creator := &models.Creator{
		UserID:          ownerUserID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Age:             req.Age,
		Gender:          models.Gender(req.Gender),
		Bio:             req.Bio,
		Instagram:       req.Instagram,
		Tiktok:          req.Tiktok,
		Youtube:         req.Youtube,
		PortfolioURL:    req.PortfolioURL,
		Equipment:       req.Equipment,
		DeliveryTime:    req.DeliveryTime,
		Mobility:        req.Mobility,
		CanInvoice:      req.CanInvoice,
		PreviousClients: req.PreviousClients,
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.creatorRepo.Create(tx, creator); err != nil {
		return nil, mapRepoError(err)
	}

	if req.Location != nil {
		if err := s.applyLocation(tx, creator.ID, req.Location); err != nil {
			return nil, err
		}
	}
	if len(req.Domains) > 0 {
		if err := s.applyDomains(tx, creator, req.Domains); err != nil {
			return nil, err
		}
	}
	if len(req.ContentTypes) > 0 {
		if err := s.applyContentTypes(tx, creator, req.ContentTypes); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("creator profile created", "creator_id", creator.ID)

	created, err := s.creatorRepo.FindByID(db, creator.ID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return buildCreatorResponse(ctx, s.store, created, auth.ViewPolicy{ShowPersonalInfo: true}, false), nil
}

func (s *creatorService) Get(ctx context.Context, db *gorm.DB, id string, requester *Requester) (*dto.CreatorResponse, error) {
	creator, err := s.creatorRepo.FindByID(db, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	owner := isOwner(creator, requester)
	role := models.UserRole("")
	if requester != nil {
		role = requester.Role
	}

	// Creator accounts only see their own profile.
	if role == models.UserRoleCreator && !owner {
		return nil, apperrors.ErrInsufficientPermissions
	}

	policy := auth.PolicyFor(role, owner)

	isFavorite := false
	if requester != nil {
		isFavorite, err = s.favoriteRepo.IsFavorite(db, id, requester.UserID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if owner {
		if err := s.creatorRepo.TouchActivity(db, id); err != nil {
			logger.Warn("failed to touch creator activity", "creator_id", id, "error", err)
		}
	}

	return buildCreatorResponse(ctx, s.store, creator, policy, isFavorite), nil
}

func (s *creatorService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateCreatorRequest, requester Requester) (*dto.CreatorResponse, error) {
	creator, err := s.creatorRepo.FindByID(db, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	owner := isOwner(creator, &requester)
	policy := auth.PolicyFor(requester.Role, owner)
	if !policy.CanEdit {
		return nil, apperrors.ErrInsufficientPermissions
	}

	applyCreatorUpdate(creator, req)

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.creatorRepo.Update(tx, creator); err != nil {
		return nil, mapRepoError(err)
	}

	if req.Location != nil {
		if err := s.applyLocation(tx, creator.ID, req.Location); err != nil {
			return nil, err
		}
	}
	if req.Domains != nil {
		if err := s.applyDomains(tx, creator, *req.Domains); err != nil {
			return nil, err
		}
	}
	if req.ContentTypes != nil {
		if err := s.applyContentTypes(tx, creator, *req.ContentTypes); err != nil {
			return nil, err
		}
	}

	if owner {
		if err := s.creatorRepo.TouchActivity(tx, creator.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.creatorRepo.FindByID(db, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return buildCreatorResponse(ctx, s.store, updated, policy, false), nil
}

// Delete removes the profile, its rows and its stored files.
func (s *creatorService) Delete(ctx context.Context, db *gorm.DB, id string, requester Requester) error {
	creator, err := s.creatorRepo.FindByID(db, id)
	if err != nil {
		return mapRepoError(err)
	}

	policy := auth.PolicyFor(requester.Role, isOwner(creator, &requester))
	if !policy.CanDelete {
		return apperrors.ErrInsufficientPermissions
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.creatorRepo.Delete(tx, id); err != nil {
		return mapRepoError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	// Files are cleaned up after the commit; a leftover file is better
	// than a dangling row.
	for i := range creator.Media {
		s.removeFile(ctx, creator.Media[i].FilePath)
		s.removeFile(ctx, creator.Media[i].ThumbnailPath)
	}

	logger.Info("creator profile deleted", "creator_id", id, "deleted_by", requester.UserID)
	return nil
}

func (s *creatorService) SetVerified(db *gorm.DB, id string, verified bool, requester Requester) error {
	policy := auth.PolicyFor(requester.Role, false)
	if !policy.CanVerify {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.creatorRepo.SetVerified(db, id, verified); err != nil {
		return mapRepoError(err)
	}

	logger.Info("creator verification changed", "creator_id", id, "verified", verified, "by", requester.UserID)
	return nil
}

func (s *creatorService) Cities(db *gorm.DB, prefix string) ([]string, error) {
	cities, err := s.creatorRepo.DistinctCities(db, prefix, cityAutocompleteLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cities, nil
}

func (s *creatorService) applyLocation(tx *gorm.DB, creatorID string, payload *dto.LocationPayload) error {
	// Coordinates come in pairs.
	if (payload.Latitude == nil) != (payload.Longitude == nil) {
		return apperrors.ErrInvalidCoordinates
	}
	if payload.Latitude != nil {
		if err := algorithms.ValidateCoordinates(*payload.Latitude, *payload.Longitude); err != nil {
			return apperrors.ErrInvalidCoordinates
		}
	}

	location := &models.Location{
		CreatorID:  creatorID,
		City:       payload.City,
		Country:    payload.Country,
		PostalCode: payload.PostalCode,
		Latitude:   payload.Latitude,
		Longitude:  payload.Longitude,
	}
	if err := s.creatorRepo.UpsertLocation(tx, location); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *creatorService) applyDomains(tx *gorm.DB, creator *models.Creator, names []string) error {
	domains := make([]models.Domain, 0, len(names))
	for _, name := range algorithms.DedupeDomains(names) {
		domain, err := s.taxonomyRepo.GetOrCreateDomain(tx, name)
		if err != nil {
			return apperrors.InternalError(err)
		}
		domains = append(domains, *domain)
	}
	if err := s.creatorRepo.ReplaceDomains(tx, creator, domains); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *creatorService) applyContentTypes(tx *gorm.DB, creator *models.Creator, names []string) error {
	contentTypes := make([]models.ContentType, 0, len(names))
	for _, name := range algorithms.DedupeDomains(names) {
		contentType, err := s.taxonomyRepo.GetOrCreateContentType(tx, name)
		if err != nil {
			return apperrors.InternalError(err)
		}
		contentTypes = append(contentTypes, *contentType)
	}
	if err := s.creatorRepo.ReplaceContentTypes(tx, creator, contentTypes); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *creatorService) removeFile(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.store.Delete(ctx, path); err != nil {
		logger.Warn("failed to delete stored file", "path", path, "error", err)
	}
}

func isOwner(creator *models.Creator, requester *Requester) bool {
	return requester != nil && creator.UserID != nil && *creator.UserID == requester.UserID
}

func applyCreatorUpdate(creator *models.Creator, req *dto.UpdateCreatorRequest) {
	if req.FirstName != nil {
		creator.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		creator.LastName = *req.LastName
	}
	if req.Email != nil {
		creator.Email = *req.Email
	}
	if req.Phone != nil {
		creator.Phone = *req.Phone
	}
	if req.Age != nil {
		creator.Age = *req.Age
	}
	if req.Gender != nil {
		creator.Gender = models.Gender(*req.Gender)
	}
	if req.Bio != nil {
		creator.Bio = *req.Bio
	}
	if req.Instagram != nil {
		creator.Instagram = *req.Instagram
	}
	if req.Tiktok != nil {
		creator.Tiktok = *req.Tiktok
	}
	if req.Youtube != nil {
		creator.Youtube = *req.Youtube
	}
	if req.PortfolioURL != nil {
		creator.PortfolioURL = *req.PortfolioURL
	}
	if req.Equipment != nil {
		creator.Equipment = *req.Equipment
	}
	if req.DeliveryTime != nil {
		creator.DeliveryTime = *req.DeliveryTime
	}
	if req.Mobility != nil {
		creator.Mobility = *req.Mobility
	}
	if req.CanInvoice != nil {
		creator.CanInvoice = *req.CanInvoice
	}
	if req.PreviousClients != nil {
		creator.PreviousClients = *req.PreviousClients
	}
}

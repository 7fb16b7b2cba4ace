package services

import (
	"context"

	"neads_backend/internal/auth"
	"neads_backend/internal/repositories"
	"neads_backend/internal/services/dto"
	"neads_backend/internal/storage"
	"neads_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type FavoriteService interface {
	Toggle(db *gorm.DB, requester Requester, creatorID string) (*dto.ToggleFavoriteResponse, error)
	List(ctx context.Context, db *gorm.DB, requester Requester) ([]*dto.FavoriteResponse, error)
	UpdateNote(db *gorm.DB, requester Requester, creatorID string, req *dto.UpdateFavoriteNoteRequest) error
}

type favoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	creatorRepo  repositories.CreatorRepository
	store        storage.Storage
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, creatorRepo repositories.CreatorRepository, store storage.Storage) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		creatorRepo:  creatorRepo,
		store:        store,
	}
}

func (s *favoriteService) Toggle(db *gorm.DB, requester Requester, creatorID string) (*dto.ToggleFavoriteResponse, error) {
	if _, err := s.creatorRepo.FindByID(db, creatorID); err != nil {
		return nil, mapRepoError(err)
	}

	isFavorite, err := s.favoriteRepo.Toggle(db, creatorID, requester.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ToggleFavoriteResponse{
		CreatorID:  creatorID,
		IsFavorite: isFavorite,
	}, nil
}

func (s *favoriteService) List(ctx context.Context, db *gorm.DB, requester Requester) ([]*dto.FavoriteResponse, error) {
	favorites, err := s.favoriteRepo.FindByUser(db, requester.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	policy := auth.PolicyFor(requester.Role, false)

	resp := make([]*dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		item := &dto.FavoriteResponse{
			CreatorID: favorites[i].CreatorID,
			Note:      favorites[i].Note,
			CreatedAt: favorites[i].CreatedAt,
		}
		if favorites[i].Creator != nil {
			// Everything in the list is a favorite by definition.
			item.Creator = buildCreatorSummary(ctx, s.store, favorites[i].Creator, policy, true)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *favoriteService) UpdateNote(db *gorm.DB, requester Requester, creatorID string, req *dto.UpdateFavoriteNoteRequest) error {
	if err := s.favoriteRepo.UpdateNote(db, creatorID, requester.UserID, req.Note); err != nil {
		return mapRepoError(err)
	}
	return nil
}

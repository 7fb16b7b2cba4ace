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

type UserService interface {
	GetMe(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateMe(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(db *gorm.DB, userID string) error
}

type userService struct {
	userRepo    repositories.UserRepository
	creatorRepo repositories.CreatorRepository
	store       storage.Storage
}

func NewUserService(userRepo repositories.UserRepository, creatorRepo repositories.CreatorRepository, store storage.Storage) UserService {
	return &userService{
		userRepo:    userRepo,
		creatorRepo: creatorRepo,
		store:       store,
	}
}

func (s *userService) GetMe(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}

	if user.Creator != nil {
		// Owners see their own profile unmasked.
		policy := auth.PolicyFor(user.Role, true)
		resp.Creator = buildCreatorResponse(ctx, s.store, user.Creator, policy, false)
	}

	return resp, nil
}

func (s *userService) UpdateMe(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, mapRepoError(err)
	}

	return s.GetMe(ctx, db, userID)
}

func (s *userService) Delete(db *gorm.DB, userID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return mapRepoError(err)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	// Remove the creator profile and everything hanging off it first.
	if user.Creator != nil {
		if err := s.creatorRepo.Delete(tx, user.Creator.ID); err != nil {
			return mapRepoError(err)
		}
	}

	if err := s.userRepo.Delete(tx, userID); err != nil {
		return mapRepoError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

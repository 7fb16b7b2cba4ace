package services

import (
	"neads_backend/internal/auth"
	"neads_backend/internal/logger"
	"neads_backend/internal/models"
	"neads_backend/internal/repositories"
	"neads_backend/internal/services/dto"
	"neads_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type RatingService interface {
	Create(db *gorm.DB, requester Requester, req *dto.CreateRatingRequest) (*dto.RatingResponse, error)
	Update(db *gorm.DB, requester Requester, ratingID string, req *dto.UpdateRatingRequest) (*dto.RatingResponse, error)
	Delete(db *gorm.DB, requester Requester, ratingID string) error
	Breakdown(db *gorm.DB, creatorID string) (*dto.RatingBreakdownResponse, error)
}

type ratingService struct {
	ratingRepo  repositories.RatingRepository
	creatorRepo repositories.CreatorRepository
}

func NewRatingService(ratingRepo repositories.RatingRepository, creatorRepo repositories.CreatorRepository) RatingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		creatorRepo: creatorRepo,
	}
}

func (s *ratingService) Create(db *gorm.DB, requester Requester, req *dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	policy := auth.PolicyFor(requester.Role, false)
	if !policy.CanRate {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if _, err := s.creatorRepo.FindByID(db, req.CreatorID); err != nil {
		return nil, mapRepoError(err)
	}

	rating := &models.Rating{
		CreatorID: req.CreatorID,
		RaterID:   requester.UserID,
		Score:     req.Score,
		Comment:   req.Comment,
	}

	// Ratings from staff count as verified immediately.
	if policy.CanVerify {
		rating.IsVerified = true
		rating.VerifiedBy = &requester.UserID
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.ratingRepo.Create(tx, rating); err != nil {
		return nil, mapRepoError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("rating created", "creator_id", rating.CreatorID, "rater_id", rating.RaterID, "score", rating.Score)
	return buildRatingResponse(rating), nil
}

func (s *ratingService) Update(db *gorm.DB, requester Requester, ratingID string, req *dto.UpdateRatingRequest) (*dto.RatingResponse, error) {
	rating, err := s.ratingRepo.FindByID(db, ratingID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if rating.RaterID != requester.UserID && requester.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Score != nil {
		rating.Score = *req.Score
	}
	if req.Comment != nil {
		rating.Comment = *req.Comment
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.ratingRepo.Update(tx, rating); err != nil {
		return nil, mapRepoError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildRatingResponse(rating), nil
}

func (s *ratingService) Delete(db *gorm.DB, requester Requester, ratingID string) error {
	rating, err := s.ratingRepo.FindByID(db, ratingID)
	if err != nil {
		return mapRepoError(err)
	}

	if rating.RaterID != requester.UserID && requester.Role != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.ratingRepo.Delete(tx, ratingID); err != nil {
		return mapRepoError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("rating deleted", "rating_id", ratingID, "by", requester.UserID)
	return nil
}

func (s *ratingService) Breakdown(db *gorm.DB, creatorID string) (*dto.RatingBreakdownResponse, error) {
	creator, err := s.creatorRepo.FindByID(db, creatorID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	breakdown, err := s.ratingRepo.Breakdown(db, creatorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ratings, err := s.ratingRepo.FindByCreator(db, creatorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.RatingBreakdownResponse{
		AverageRating: creator.AverageRating,
		TotalRatings:  creator.TotalRatings,
		Breakdown:     breakdown,
	}
	for i := range ratings {
		resp.Ratings = append(resp.Ratings, buildRatingResponse(&ratings[i]))
	}
	return resp, nil
}

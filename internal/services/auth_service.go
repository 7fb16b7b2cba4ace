package services

import (
	"time"

	"neads_backend/internal/auth"
	"neads_backend/internal/email"
	"neads_backend/internal/logger"
	"neads_backend/internal/models"
	"neads_backend/internal/repositories"
	"neads_backend/internal/services/dto"
	"neads_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One-shot login links expire after a day.
const tempLoginTTL = 24 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)

	// RequestTempLogin emails a one-shot login link. Always succeeds for
	// unknown emails so the endpoint does not leak which addresses exist.
	RequestTempLogin(db *gorm.DB, req *dto.TempLoginRequest) error
	ConsumeTempLogin(db *gorm.DB, token string) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	creatorRepo repositories.CreatorRepository
	email       email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, creatorRepo repositories.CreatorRepository, emailProvider email.Provider) AuthService {
	return &authService{
		userRepo:    userRepo,
		creatorRepo: creatorRepo,
		email:       emailProvider,
	}
}

func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidateRole(string(req.Role)); err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       models.UserStatusActive,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.userRepo.Create(tx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Creator accounts start with an empty profile they can fill in
	// later.
	if user.Role == models.UserRoleCreator {
		creator := &models.Creator{
			UserID:    &user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		}
		if err := s.creatorRepo.Create(tx, creator); err != nil {
			return nil, mapRepoError(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return s.buildAuthResponse(user)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	return s.buildAuthResponse(user)
}

func (s *authService) RequestTempLogin(db *gorm.DB, req *dto.TempLoginRequest) error {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			logger.Debug("temp login requested for unknown email")
			return nil
		}
		return apperrors.InternalError(err)
	}

	if user.Status == models.UserStatusSuspended {
		return nil
	}

	token := uuid.NewString()
	expiresAt := time.Now().Add(tempLoginTTL)

	if err := s.userRepo.SetTempLoginToken(db, user.ID, token, expiresAt); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.email.SendTempLoginLink(user.Email, token); err != nil {
		logger.Error("failed to send temp login email", "user_id", user.ID, "error", err)
		return apperrors.InternalError(err)
	}

	logger.Info("temp login link sent", "user_id", user.ID)
	return nil
}

func (s *authService) ConsumeTempLogin(db *gorm.DB, token string) (*dto.AuthResponse, error) {
	if token == "" {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByTempLoginToken(db, token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if user.TempLoginTokenExp == nil || time.Now().After(*user.TempLoginTokenExp) {
		return nil, apperrors.ErrInvalidToken
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	// The token is one-shot.
	if err := s.userRepo.ClearTempLoginToken(db, user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user)
}

func (s *authService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		User: dto.UserDTO{
			ID:        user.ID,
			Email:     user.Email,
			Role:      user.Role,
			Status:    user.Status,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"neads_backend/internal/auth"
	"neads_backend/internal/imageprocessor"
	"neads_backend/internal/logger"
	"neads_backend/internal/models"
	"neads_backend/internal/repositories"
	"neads_backend/internal/services/dto"
	"neads_backend/internal/storage"
	"neads_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadLimits carries the size and MIME restrictions from the config.
type UploadLimits struct {
	MaxImageSize      int64
	MaxVideoSize      int64
	AllowedImageTypes []string
	AllowedVideoTypes []string
}

type MediaService interface {
	// Upload stores a portfolio file. Video uploads must carry a
	// thumbnail image in thumbHeader; image thumbnails are derived.
	Upload(ctx context.Context, db *gorm.DB, creatorID string, fileHeader, thumbHeader *multipart.FileHeader, req *dto.UploadMediaRequest, requester Requester) (*dto.MediaResponse, error)
	List(ctx context.Context, db *gorm.DB, creatorID string) (*dto.MediaListResponse, error)
	Reorder(db *gorm.DB, creatorID string, req *dto.ReorderMediaRequest, requester Requester) error
	Delete(ctx context.Context, db *gorm.DB, mediaID string, requester Requester) error
	SetVerified(db *gorm.DB, mediaID string, verified bool, requester Requester) error
}

type mediaService struct {
	mediaRepo   repositories.MediaRepository
	creatorRepo repositories.CreatorRepository
	store       storage.Storage
	processor   *imageprocessor.Processor
	limits      UploadLimits
}

func NewMediaService(
	mediaRepo repositories.MediaRepository,
	creatorRepo repositories.CreatorRepository,
	store storage.Storage,
	processor *imageprocessor.Processor,
	limits UploadLimits,
) MediaService {
	return &mediaService{
		mediaRepo:   mediaRepo,
		creatorRepo: creatorRepo,
		store:       store,
		processor:   processor,
		limits:      limits,
	}
}

func (s *mediaService) Upload(ctx context.Context, db *gorm.DB, creatorID string, fileHeader, thumbHeader *multipart.FileHeader, req *dto.UploadMediaRequest, requester Requester) (*dto.MediaResponse, error) {
	creator, err := s.creatorRepo.FindByID(db, creatorID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	policy := auth.PolicyFor(requester.Role, isOwner(creator, &requester))
	if !policy.CanEdit {
		return nil, apperrors.ErrInsufficientPermissions
	}

	mediaType := models.MediaType(req.Type)
	contentType := fileHeader.Header.Get("Content-Type")

	if err := s.validateFile(mediaType, contentType, fileHeader.Size); err != nil {
		return nil, err
	}

	if mediaType == models.MediaTypeVideo {
		if thumbHeader == nil {
			return nil, apperrors.ErrThumbnailRequired
		}
		if err := s.validateFile(models.MediaTypeImage, thumbHeader.Header.Get("Content-Type"), thumbHeader.Size); err != nil {
			return nil, err
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	base := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	path := fmt.Sprintf("creators/%s/%s/%s%s", creatorID, mediaType, base, ext)

	media := &models.Media{
		CreatorID:   creatorID,
		Type:        mediaType,
		FilePath:    path,
		FileSize:    fileHeader.Size,
		ContentType: contentType,
		Title:       req.Title,
		// Staff uploads skip moderation.
		IsVerified: policy.CanVerify,
	}

	// Thumbnails are derived before anything is persisted, so a broken
	// image fails the whole upload. Images are thumbnailed from the
	// upload itself, videos from the separately provided image.
	thumbSource := data
	if mediaType == models.MediaTypeVideo {
		thumbFile, err := thumbHeader.Open()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		thumbSource, err = io.ReadAll(thumbFile)
		thumbFile.Close()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	thumb, err := s.processor.Thumbnail(bytes.NewReader(thumbSource))
	if err != nil {
		logger.Warn("failed to decode thumbnail source", "creator_id", creatorID, "error", err)
		return nil, apperrors.ErrInvalidFileType
	}
	thumbData, err := io.ReadAll(thumb)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	media.ThumbnailPath = fmt.Sprintf("creators/%s/%s/%s_thumb.jpg", creatorID, mediaType, base)

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	// The cap check and the insert run in one transaction.
	if err := s.mediaRepo.Create(tx, media); err != nil {
		return nil, mapRepoError(err)
	}

	if err := s.store.Save(ctx, media.FilePath, bytes.NewReader(data), contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if media.ThumbnailPath != "" {
		if err := s.store.Save(ctx, media.ThumbnailPath, bytes.NewReader(thumbData), "image/jpeg"); err != nil {
			s.removeFile(ctx, media.FilePath)
			return nil, apperrors.InternalError(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.removeFile(ctx, media.FilePath)
		s.removeFile(ctx, media.ThumbnailPath)
		return nil, apperrors.InternalError(err)
	}

	logger.Info("media uploaded", "creator_id", creatorID, "media_id", media.ID, "type", mediaType)
	return buildMediaResponse(ctx, s.store, media), nil
}

func (s *mediaService) List(ctx context.Context, db *gorm.DB, creatorID string) (*dto.MediaListResponse, error) {
	if _, err := s.creatorRepo.FindByID(db, creatorID); err != nil {
		return nil, mapRepoError(err)
	}

	media, err := s.mediaRepo.FindByCreator(db, creatorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.MediaListResponse{
		Images: make([]*dto.MediaResponse, 0),
		Videos: make([]*dto.MediaResponse, 0),
	}
	for i := range media {
		item := buildMediaResponse(ctx, s.store, &media[i])
		if media[i].Type == models.MediaTypeVideo {
			resp.Videos = append(resp.Videos, item)
		} else {
			resp.Images = append(resp.Images, item)
		}
	}
	return resp, nil
}

func (s *mediaService) Reorder(db *gorm.DB, creatorID string, req *dto.ReorderMediaRequest, requester Requester) error {
	creator, err := s.creatorRepo.FindByID(db, creatorID)
	if err != nil {
		return mapRepoError(err)
	}

	policy := auth.PolicyFor(requester.Role, isOwner(creator, &requester))
	if !policy.CanEdit {
		return apperrors.ErrInsufficientPermissions
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.mediaRepo.Reorder(tx, creatorID, req.MediaIDs); err != nil {
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *mediaService) Delete(ctx context.Context, db *gorm.DB, mediaID string, requester Requester) error {
	media, err := s.mediaRepo.FindByID(db, mediaID)
	if err != nil {
		return mapRepoError(err)
	}

	creator, err := s.creatorRepo.FindByID(db, media.CreatorID)
	if err != nil {
		return mapRepoError(err)
	}

	policy := auth.PolicyFor(requester.Role, isOwner(creator, &requester))
	if !policy.CanEdit {
		return apperrors.ErrInsufficientPermissions
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.mediaRepo.Delete(tx, mediaID); err != nil {
		return mapRepoError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	s.removeFile(ctx, media.FilePath)
	s.removeFile(ctx, media.ThumbnailPath)

	logger.Info("media deleted", "media_id", mediaID, "by", requester.UserID)
	return nil
}

func (s *mediaService) SetVerified(db *gorm.DB, mediaID string, verified bool, requester Requester) error {
	policy := auth.PolicyFor(requester.Role, false)
	if !policy.CanVerify {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.mediaRepo.SetVerified(db, mediaID, verified); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func (s *mediaService) validateFile(mediaType models.MediaType, contentType string, size int64) error {
	var maxSize int64
	var allowed []string

	switch mediaType {
	case models.MediaTypeImage:
		maxSize = s.limits.MaxImageSize
		allowed = s.limits.AllowedImageTypes
	case models.MediaTypeVideo:
		maxSize = s.limits.MaxVideoSize
		allowed = s.limits.AllowedVideoTypes
	default:
		return apperrors.ErrInvalidFileType
	}

	if size > maxSize {
		return apperrors.ErrFileTooLarge
	}

	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return nil
		}
	}
	return apperrors.ErrInvalidFileType
}

func (s *mediaService) removeFile(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.store.Delete(ctx, path); err != nil {
		logger.Warn("failed to delete stored file", "path", path, "error", err)
	}
}

package repositories

import (
	"errors"

	"neads_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMediaNotFound     = errors.New("media not found")
	ErrMediaLimitReached = errors.New("media limit reached for this type")
)

type MediaRepository interface {
	// Create persists a media row after enforcing the per-type cap. Must
	// run inside the caller's transaction so the count and the insert are
	// atomic.
	Create(db *gorm.DB, media *models.Media) error
	FindByID(db *gorm.DB, id string) (*models.Media, error)
	FindByCreator(db *gorm.DB, creatorID string) ([]models.Media, error)
	FindByCreatorAndType(db *gorm.DB, creatorID string, mediaType models.MediaType) ([]models.Media, error)
	CountByType(db *gorm.DB, creatorID string, mediaType models.MediaType) (int64, error)
	Reorder(db *gorm.DB, creatorID string, orderedIDs []string) error
	Delete(db *gorm.DB, id string) error
	SetVerified(db *gorm.DB, id string, verified bool) error
}

type MediaRepositoryImpl struct{}

func NewMediaRepository() MediaRepository {
	return &MediaRepositoryImpl{}
}

func (r *MediaRepositoryImpl) Create(db *gorm.DB, media *models.Media) error {
	count, err := r.CountByType(db, media.CreatorID, media.Type)
	if err != nil {
		return err
	}
	if count >= models.MaxMediaPerType {
		return ErrMediaLimitReached
	}

	// Append at the end of the creator's ordering for this type.
	var maxIndex int
	err = db.Model(&models.Media{}).
		Where("creator_id = ? AND type = ?", media.CreatorID, media.Type).
		Select("COALESCE(MAX(order_index), -1)").
		Scan(&maxIndex).Error
	if err != nil {
		return err
	}
	media.OrderIndex = maxIndex + 1

	return db.Create(media).Error
}

func (r *MediaRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Media, error) {
	var media models.Media
	err := db.First(&media, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &media, nil
}

func (r *MediaRepositoryImpl) FindByCreator(db *gorm.DB, creatorID string) ([]models.Media, error) {
	var media []models.Media
	err := db.Where("creator_id = ?", creatorID).
		Order("type ASC, order_index ASC").
		Find(&media).Error
	return media, err
}

func (r *MediaRepositoryImpl) FindByCreatorAndType(db *gorm.DB, creatorID string, mediaType models.MediaType) ([]models.Media, error) {
	var media []models.Media
	err := db.Where("creator_id = ? AND type = ?", creatorID, mediaType).
		Order("order_index ASC").
		Find(&media).Error
	return media, err
}

func (r *MediaRepositoryImpl) CountByType(db *gorm.DB, creatorID string, mediaType models.MediaType) (int64, error) {
	var count int64
	err := db.Model(&models.Media{}).
		Where("creator_id = ? AND type = ?", creatorID, mediaType).
		Count(&count).Error
	return count, err
}

// Reorder rewrites order indexes to match the given id order. IDs not
// belonging to the creator are ignored.
func (r *MediaRepositoryImpl) Reorder(db *gorm.DB, creatorID string, orderedIDs []string) error {
	for i, id := range orderedIDs {
		err := db.Model(&models.Media{}).
			Where("id = ? AND creator_id = ?", id, creatorID).
			Update("order_index", i).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the row and closes the order gap it leaves.
func (r *MediaRepositoryImpl) Delete(db *gorm.DB, id string) error {
	var media models.Media
	if err := db.First(&media, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMediaNotFound
		}
		return err
	}

	if err := db.Delete(&media).Error; err != nil {
		return err
	}

	return db.Model(&models.Media{}).
		Where("creator_id = ? AND type = ? AND order_index > ?", media.CreatorID, media.Type, media.OrderIndex).
		Update("order_index", gorm.Expr("order_index - 1")).Error
}

func (r *MediaRepositoryImpl) SetVerified(db *gorm.DB, id string, verified bool) error {
	result := db.Model(&models.Media{}).Where("id = ?", id).Update("is_verified", verified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

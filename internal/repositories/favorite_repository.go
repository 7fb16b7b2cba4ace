package repositories

import (
	"errors"

	"neads_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepository interface {
	// Toggle adds the pair if absent and removes it if present. Returns
	// true when the creator is a favorite after the call.
	Toggle(db *gorm.DB, creatorID, userID string) (bool, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Favorite, error)
	IDsOf(db *gorm.DB, userID string) (map[string]bool, error)
	IsFavorite(db *gorm.DB, creatorID, userID string) (bool, error)
	UpdateNote(db *gorm.DB, creatorID, userID, note string) error
}

type FavoriteRepositoryImpl struct{}

func NewFavoriteRepository() FavoriteRepository {
	return &FavoriteRepositoryImpl{}
}

func (r *FavoriteRepositoryImpl) Toggle(db *gorm.DB, creatorID, userID string) (bool, error) {
	var existing models.Favorite
	err := db.Where("creator_id = ? AND user_id = ?", creatorID, userID).First(&existing).Error
	if err == nil {
		if err := db.Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	favorite := models.Favorite{CreatorID: creatorID, UserID: userID}
	if err := db.Create(&favorite).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *FavoriteRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := db.Preload("Creator").Preload("Creator.Location").Preload("Creator.Domains").
		Preload("Creator.Media", func(db *gorm.DB) *gorm.DB {
			return db.Where("type = ?", models.MediaTypeImage).Order("order_index ASC").Limit(1)
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (r *FavoriteRepositoryImpl) IDsOf(db *gorm.DB, userID string) (map[string]bool, error) {
	var ids []string
	err := db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("creator_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (r *FavoriteRepositoryImpl) IsFavorite(db *gorm.DB, creatorID, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.Favorite{}).
		Where("creator_id = ? AND user_id = ?", creatorID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepositoryImpl) UpdateNote(db *gorm.DB, creatorID, userID, note string) error {
	result := db.Model(&models.Favorite{}).
		Where("creator_id = ? AND user_id = ?", creatorID, userID).
		Update("note", note)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

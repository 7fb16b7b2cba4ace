package repositories

import (
	"errors"

	"neads_backend/internal/algorithms"
	"neads_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRatingNotFound      = errors.New("rating not found")
	ErrRatingAlreadyExists = errors.New("rating already exists for this creator and rater")
	ErrInvalidRatingScore  = errors.New("rating score must be between 1 and 5")
)

type RatingRepository interface {
	Create(db *gorm.DB, rating *models.Rating) error
	Update(db *gorm.DB, rating *models.Rating) error
	Delete(db *gorm.DB, id string) error
	FindByID(db *gorm.DB, id string) (*models.Rating, error)
	FindByCreatorAndRater(db *gorm.DB, creatorID, raterID string) (*models.Rating, error)
	FindByCreator(db *gorm.DB, creatorID string) ([]models.Rating, error)
	Breakdown(db *gorm.DB, creatorID string) (map[int]int64, error)

	// RecomputeAggregate refreshes the creator's stored average_rating and
	// total_ratings from the full rating set. Must run inside the same
	// transaction as the rating write that triggered it.
	RecomputeAggregate(db *gorm.DB, creatorID string) error
}

type RatingRepositoryImpl struct{}

func NewRatingRepository() RatingRepository {
	return &RatingRepositoryImpl{}
}

func (r *RatingRepositoryImpl) Create(db *gorm.DB, rating *models.Rating) error {
	if rating.Score < 1 || rating.Score > 5 {
		return ErrInvalidRatingScore
	}

	var existing models.Rating
	err := db.Where("creator_id = ? AND rater_id = ?", rating.CreatorID, rating.RaterID).
		First(&existing).Error
	if err == nil {
		return ErrRatingAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := db.Create(rating).Error; err != nil {
		return err
	}

	return r.RecomputeAggregate(db, rating.CreatorID)
}

func (r *RatingRepositoryImpl) Update(db *gorm.DB, rating *models.Rating) error {
	if rating.Score < 1 || rating.Score > 5 {
		return ErrInvalidRatingScore
	}

	result := db.Model(rating).Updates(map[string]interface{}{
		"score":   rating.Score,
		"comment": rating.Comment,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRatingNotFound
	}

	return r.RecomputeAggregate(db, rating.CreatorID)
}

func (r *RatingRepositoryImpl) Delete(db *gorm.DB, id string) error {
	var rating models.Rating
	if err := db.First(&rating, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatingNotFound
		}
		return err
	}

	if err := db.Delete(&rating).Error; err != nil {
		return err
	}

	return r.RecomputeAggregate(db, rating.CreatorID)
}

func (r *RatingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Rating, error) {
	var rating models.Rating
	err := db.First(&rating, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) FindByCreatorAndRater(db *gorm.DB, creatorID, raterID string) (*models.Rating, error) {
	var rating models.Rating
	err := db.Where("creator_id = ? AND rater_id = ?", creatorID, raterID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) FindByCreator(db *gorm.DB, creatorID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := db.Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepositoryImpl) Breakdown(db *gorm.DB, creatorID string) (map[int]int64, error) {
	type row struct {
		Score int
		Count int64
	}
	var rows []row
	err := db.Model(&models.Rating{}).
		Select("score, COUNT(*) as count").
		Where("creator_id = ?", creatorID).
		Group("score").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	breakdown := map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range rows {
		breakdown[r.Score] = r.Count
	}
	return breakdown, nil
}

func (r *RatingRepositoryImpl) RecomputeAggregate(db *gorm.DB, creatorID string) error {
	// Lock the creator row so concurrent rating writes serialize their
	// recomputes.
	var creator models.Creator
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&creator, "id = ?", creatorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCreatorNotFound
		}
		return err
	}

	var ratings []models.Rating
	if err := db.Where("creator_id = ?", creatorID).Find(&ratings).Error; err != nil {
		return err
	}

	average, total := algorithms.RatingAggregate(ratings)

	return db.Model(&models.Creator{}).Where("id = ?", creatorID).Updates(map[string]interface{}{
		"average_rating": average,
		"total_ratings":  total,
	}).Error
}

package repositories

import (
	"errors"
	"strings"
	"time"

	"neads_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCreatorNotFound      = errors.New("creator not found")
	ErrCreatorAlreadyExists = errors.New("creator profile already exists for this user")
)

type CreatorRepository interface {
	Create(db *gorm.DB, creator *models.Creator) error
	FindByID(db *gorm.DB, id string) (*models.Creator, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Creator, error)
	Update(db *gorm.DB, creator *models.Creator) error
	Delete(db *gorm.DB, id string) error
	SetVerified(db *gorm.DB, id string, verified bool) error
	TouchActivity(db *gorm.DB, id string) error

	Search(db *gorm.DB, criteria *models.CreatorSearchCriteria) ([]models.Creator, int64, error)
	FindLocated(db *gorm.DB) ([]models.Creator, error)
	DistinctCities(db *gorm.DB, prefix string, limit int) ([]string, error)

	UpsertLocation(db *gorm.DB, location *models.Location) error
	ReplaceDomains(db *gorm.DB, creator *models.Creator, domains []models.Domain) error
	ReplaceContentTypes(db *gorm.DB, creator *models.Creator, contentTypes []models.ContentType) error
}

type CreatorRepositoryImpl struct{}

func NewCreatorRepository() CreatorRepository {
	return &CreatorRepositoryImpl{}
}

func (r *CreatorRepositoryImpl) Create(db *gorm.DB, creator *models.Creator) error {
	if creator.UserID != nil {
		var existing models.Creator
		if err := db.Where("user_id = ?", *creator.UserID).First(&existing).Error; err == nil {
			return ErrCreatorAlreadyExists
		}
	}
	return db.Create(creator).Error
}

func (r *CreatorRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Creator, error) {
	var creator models.Creator
	err := db.Preload("Location").Preload("Domains").Preload("ContentTypes").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&creator, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreatorNotFound
		}
		return nil, err
	}
	return &creator, nil
}

func (r *CreatorRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Creator, error) {
	var creator models.Creator
	err := db.Preload("Location").Preload("Domains").Preload("ContentTypes").
		Where("user_id = ?", userID).First(&creator).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreatorNotFound
		}
		return nil, err
	}
	return &creator, nil
}

func (r *CreatorRepositoryImpl) Update(db *gorm.DB, creator *models.Creator) error {
	result := db.Model(creator).Updates(map[string]interface{}{
		"first_name":       creator.FirstName,
		"last_name":        creator.LastName,
		"email":            creator.Email,
		"phone":            creator.Phone,
		"age":              creator.Age,
		"gender":           creator.Gender,
		"bio":              creator.Bio,
		"instagram":        creator.Instagram,
		"tiktok":           creator.Tiktok,
		"youtube":          creator.Youtube,
		"portfolio_url":    creator.PortfolioURL,
		"equipment":        creator.Equipment,
		"delivery_time":    creator.DeliveryTime,
		"mobility":         creator.Mobility,
		"can_invoice":      creator.CanInvoice,
		"previous_clients": creator.PreviousClients,
		"updated_at":       time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCreatorNotFound
	}
	return nil
}

// Delete removes the creator and every owned row. Runs inside the caller's
// transaction.
func (r *CreatorRepositoryImpl) Delete(db *gorm.DB, id string) error {
	var creator models.Creator
	if err := db.First(&creator, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCreatorNotFound
		}
		return err
	}

	if err := db.Where("creator_id = ?", id).Delete(&models.Media{}).Error; err != nil {
		return err
	}
	if err := db.Where("creator_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
		return err
	}
	if err := db.Where("creator_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
		return err
	}
	if err := db.Where("creator_id = ?", id).Delete(&models.Location{}).Error; err != nil {
		return err
	}
	if err := db.Model(&creator).Association("Domains").Clear(); err != nil {
		return err
	}
	if err := db.Model(&creator).Association("ContentTypes").Clear(); err != nil {
		return err
	}

	return db.Delete(&creator).Error
}

func (r *CreatorRepositoryImpl) SetVerified(db *gorm.DB, id string, verified bool) error {
	result := db.Model(&models.Creator{}).Where("id = ?", id).Updates(map[string]interface{}{
		"verified_by_neads": verified,
		"updated_at":        time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCreatorNotFound
	}
	return nil
}

func (r *CreatorRepositoryImpl) TouchActivity(db *gorm.DB, id string) error {
	return db.Model(&models.Creator{}).Where("id = ?", id).
		Update("last_activity", time.Now()).Error
}

// Search applies every present criterion as a SQL condition. Absent
// criteria add nothing to the query.
func (r *CreatorRepositoryImpl) Search(db *gorm.DB, criteria *models.CreatorSearchCriteria) ([]models.Creator, int64, error) {
	var creators []models.Creator
	query := db.Model(&models.Creator{})

	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		if criteria.IncludeBio {
			query = query.Where(
				"(first_name ILIKE ? OR last_name ILIKE ? OR (first_name || ' ' || last_name) ILIKE ? OR bio ILIKE ?)",
				search, search, search, search)
		} else {
			query = query.Where(
				"(first_name ILIKE ? OR last_name ILIKE ? OR (first_name || ' ' || last_name) ILIKE ?)",
				search, search, search)
		}
	}

	if len(criteria.Domains) > 0 {
		names := make([]string, 0, len(criteria.Domains))
		for _, d := range criteria.Domains {
			names = append(names, strings.ToLower(d))
		}
		query = query.Where(
			"creators.id IN (?)",
			db.Table("creator_domains").
				Select("creator_domains.creator_id").
				Joins("JOIN domains ON domains.id = creator_domains.domain_id").
				Where("LOWER(domains.name) IN ?", names),
		)
	}

	if criteria.ContentType != "" {
		query = query.Where(
			"creators.id IN (?)",
			db.Table("creator_content_types").
				Select("creator_content_types.creator_id").
				Joins("JOIN content_types ON content_types.id = creator_content_types.content_type_id").
				Where("LOWER(content_types.name) = ?", strings.ToLower(criteria.ContentType)),
		)
	}

	if criteria.MinAge != nil {
		query = query.Where("age >= ?", *criteria.MinAge)
	}
	if criteria.MaxAge != nil {
		query = query.Where("age <= ?", *criteria.MaxAge)
	}

	if criteria.Gender != "" {
		query = query.Where("gender = ?", criteria.Gender)
	}

	if criteria.Country != "" || criteria.City != "" {
		query = query.Joins("JOIN locations ON locations.creator_id = creators.id")
		if criteria.Country != "" {
			query = query.Where("locations.country ILIKE ?", "%"+criteria.Country+"%")
		}
		if criteria.City != "" {
			query = query.Where("locations.city ILIKE ?", "%"+criteria.City+"%")
		}
	}

	if criteria.MinRating != nil {
		query = query.Where("average_rating >= ?", *criteria.MinRating)
	}

	if criteria.CanInvoice != nil {
		query = query.Where("can_invoice = ?", *criteria.CanInvoice)
	}

	if criteria.VerifiedOnly {
		query = query.Where("verified_by_neads = ?", true)
	}

	if criteria.FavoritesOnly && criteria.FavoritesOf != "" {
		query = query.Where(
			"creators.id IN (?)",
			db.Table("favorites").
				Select("favorites.creator_id").
				Where("favorites.user_id = ?", criteria.FavoritesOf),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.
		Order("average_rating DESC, first_name ASC, last_name ASC").
		Limit(limit).Offset(offset).
		Preload("Location").
		Preload("Domains").
		Preload("ContentTypes").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Where("type = ?", models.MediaTypeImage).Order("order_index ASC").Limit(1)
		}).
		Find(&creators).Error

	return creators, total, err
}

// FindLocated loads the creators that can appear on the map, with the
// associations the in-memory predicate needs.
func (r *CreatorRepositoryImpl) FindLocated(db *gorm.DB) ([]models.Creator, error) {
	var creators []models.Creator
	err := db.Model(&models.Creator{}).
		Joins("JOIN locations ON locations.creator_id = creators.id").
		Where("locations.latitude IS NOT NULL AND locations.longitude IS NOT NULL").
		Preload("Location").
		Preload("Domains").
		Preload("ContentTypes").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Where("type = ?", models.MediaTypeImage).Order("order_index ASC").Limit(1)
		}).
		Find(&creators).Error
	return creators, err
}

func (r *CreatorRepositoryImpl) DistinctCities(db *gorm.DB, prefix string, limit int) ([]string, error) {
	var cities []string
	query := db.Model(&models.Location{}).
		Distinct("city").
		Where("city <> ''").
		Order("city ASC").
		Limit(limit)
	if prefix != "" {
		query = query.Where("city ILIKE ?", prefix+"%")
	}
	err := query.Pluck("city", &cities).Error
	return cities, err
}

func (r *CreatorRepositoryImpl) UpsertLocation(db *gorm.DB, location *models.Location) error {
	var existing models.Location
	err := db.Where("creator_id = ?", location.CreatorID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(location).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&existing).Updates(map[string]interface{}{
		"city":        location.City,
		"country":     location.Country,
		"postal_code": location.PostalCode,
		"latitude":    location.Latitude,
		"longitude":   location.Longitude,
	}).Error
}

func (r *CreatorRepositoryImpl) ReplaceDomains(db *gorm.DB, creator *models.Creator, domains []models.Domain) error {
	return db.Model(creator).Association("Domains").Replace(domains)
}

func (r *CreatorRepositoryImpl) ReplaceContentTypes(db *gorm.DB, creator *models.Creator, contentTypes []models.ContentType) error {
	return db.Model(creator).Association("ContentTypes").Replace(contentTypes)
}

package repositories

import (
	"errors"
	"strings"

	"neads_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTagNotFound = errors.New("tag not found")

// TaxonomyRepository manages the open domain and content-type
// vocabularies.
type TaxonomyRepository interface {
	ListDomains(db *gorm.DB) ([]models.Domain, error)
	GetOrCreateDomain(db *gorm.DB, name string) (*models.Domain, error)
	FindDomainsByNames(db *gorm.DB, names []string) ([]models.Domain, error)

	ListContentTypes(db *gorm.DB) ([]models.ContentType, error)
	GetOrCreateContentType(db *gorm.DB, name string) (*models.ContentType, error)
	FindContentTypesByNames(db *gorm.DB, names []string) ([]models.ContentType, error)
}

type TaxonomyRepositoryImpl struct{}

func NewTaxonomyRepository() TaxonomyRepository {
	return &TaxonomyRepositoryImpl{}
}

func (r *TaxonomyRepositoryImpl) ListDomains(db *gorm.DB) ([]models.Domain, error) {
	var domains []models.Domain
	err := db.Order("name ASC").Find(&domains).Error
	return domains, err
}

func (r *TaxonomyRepositoryImpl) GetOrCreateDomain(db *gorm.DB, name string) (*models.Domain, error) {
	name = strings.TrimSpace(name)

	var domain models.Domain
	err := db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&domain).Error
	if err == nil {
		return &domain, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	domain = models.Domain{Name: name}
	if err := db.Create(&domain).Error; err != nil {
		return nil, err
	}
	return &domain, nil
}

func (r *TaxonomyRepositoryImpl) FindDomainsByNames(db *gorm.DB, names []string) ([]models.Domain, error) {
	lowered := make([]string, 0, len(names))
	for _, n := range names {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(n)))
	}

	var domains []models.Domain
	err := db.Where("LOWER(name) IN ?", lowered).Find(&domains).Error
	return domains, err
}

func (r *TaxonomyRepositoryImpl) ListContentTypes(db *gorm.DB) ([]models.ContentType, error) {
	var contentTypes []models.ContentType
	err := db.Order("name ASC").Find(&contentTypes).Error
	return contentTypes, err
}

func (r *TaxonomyRepositoryImpl) GetOrCreateContentType(db *gorm.DB, name string) (*models.ContentType, error) {
	name = strings.TrimSpace(name)

	var contentType models.ContentType
	err := db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&contentType).Error
	if err == nil {
		return &contentType, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	contentType = models.ContentType{Name: name}
	if err := db.Create(&contentType).Error; err != nil {
		return nil, err
	}
	return &contentType, nil
}

func (r *TaxonomyRepositoryImpl) FindContentTypesByNames(db *gorm.DB, names []string) ([]models.ContentType, error) {
	lowered := make([]string, 0, len(names))
	for _, n := range names {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(n)))
	}

	var contentTypes []models.ContentType
	err := db.Where("LOWER(name) IN ?", lowered).Find(&contentTypes).Error
	return contentTypes, err
}

package services

import (
	"neads_backend/internal/models"
	"neads_backend/internal/repositories"
	"neads_backend/internal/services/dto"
	"neads_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// TaxonomyService exposes the open domain and content-type vocabularies.
type TaxonomyService interface {
	ListDomains(db *gorm.DB) ([]*dto.TagResponse, error)
	CreateDomain(db *gorm.DB, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	ListContentTypes(db *gorm.DB) ([]*dto.TagResponse, error)
	CreateContentType(db *gorm.DB, req *dto.CreateTagRequest) (*dto.TagResponse, error)
}

type taxonomyService struct {
	taxonomyRepo repositories.TaxonomyRepository
}

func NewTaxonomyService(taxonomyRepo repositories.TaxonomyRepository) TaxonomyService {
	return &taxonomyService{taxonomyRepo: taxonomyRepo}
}

func (s *taxonomyService) ListDomains(db *gorm.DB) ([]*dto.TagResponse, error) {
	domains, err := s.taxonomyRepo.ListDomains(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]*dto.TagResponse, 0, len(domains))
	for i := range domains {
		resp = append(resp, domainTag(&domains[i]))
	}
	return resp, nil
}

func (s *taxonomyService) CreateDomain(db *gorm.DB, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	domain, err := s.taxonomyRepo.GetOrCreateDomain(db, req.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return domainTag(domain), nil
}

func (s *taxonomyService) ListContentTypes(db *gorm.DB) ([]*dto.TagResponse, error) {
	contentTypes, err := s.taxonomyRepo.ListContentTypes(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]*dto.TagResponse, 0, len(contentTypes))
	for i := range contentTypes {
		resp = append(resp, contentTypeTag(&contentTypes[i]))
	}
	return resp, nil
}

func (s *taxonomyService) CreateContentType(db *gorm.DB, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	contentType, err := s.taxonomyRepo.GetOrCreateContentType(db, req.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return contentTypeTag(contentType), nil
}

func domainTag(d *models.Domain) *dto.TagResponse {
	return &dto.TagResponse{ID: d.ID, Name: d.Name}
}

func contentTypeTag(t *models.ContentType) *dto.TagResponse {
	return &dto.TagResponse{ID: t.ID, Name: t.Name}
}

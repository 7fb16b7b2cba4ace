package services

import (
	"context"

	"neads_backend/internal/auth"
	"neads_backend/internal/logger"
	"neads_backend/internal/models"
	"neads_backend/internal/services/dto"
	"neads_backend/internal/storage"
)

// Response builders shared by the creator, search, geo and favorite
// services. All of them take the already-computed view policy so the
// masking rules stay in auth.PolicyFor.

func buildLocationResponse(loc *models.Location) *dto.LocationResponse {
	if loc == nil {
		return nil
	}
	return &dto.LocationResponse{
		City:       loc.City,
		Country:    loc.Country,
		PostalCode: loc.PostalCode,
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
	}
}

func domainNames(domains []models.Domain) []string {
	names := make([]string, 0, len(domains))
	for _, d := range domains {
		names = append(names, d.Name)
	}
	return names
}

func contentTypeNames(types []models.ContentType) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Name)
	}
	return names
}

func displayName(c *models.Creator, policy auth.ViewPolicy) string {
	if policy.MaskLastName {
		return c.MaskedName()
	}
	return c.FullName()
}

// resolveURL swallows storage errors on read paths: a card without a
// thumbnail beats a failed listing.
func resolveURL(ctx context.Context, store storage.Storage, path string) string {
	if path == "" || store == nil {
		return ""
	}
	url, err := store.GetURL(ctx, path)
	if err != nil {
		logger.CtxWarn(ctx, "failed to resolve media url", "path", path, "error", err)
		return ""
	}
	return url
}

func buildMediaResponse(ctx context.Context, store storage.Storage, m *models.Media) *dto.MediaResponse {
	return &dto.MediaResponse{
		ID:           m.ID,
		CreatorID:    m.CreatorID,
		Type:         string(m.Type),
		URL:          resolveURL(ctx, store, m.FilePath),
		ThumbnailURL: resolveURL(ctx, store, m.ThumbnailPath),
		Title:        m.Title,
		OrderIndex:   m.OrderIndex,
		IsVerified:   m.IsVerified,
		CreatedAt:    m.CreatedAt,
	}
}

// buildCreatorSummary builds the card view. The thumbnail comes from the
// creator's first image, which the repository preloads in order.
func buildCreatorSummary(ctx context.Context, store storage.Storage, c *models.Creator, policy auth.ViewPolicy, isFavorite bool) *dto.CreatorSummary {
	summary := &dto.CreatorSummary{
		ID:              c.ID,
		DisplayName:     displayName(c, policy),
		Age:             c.Age,
		Gender:          string(c.Gender),
		AverageRating:   c.AverageRating,
		TotalRatings:    c.TotalRatings,
		VerifiedByNeads: c.VerifiedByNeads,
		CanInvoice:      c.CanInvoice,
		Domains:         domainNames(c.Domains),
		Location:        buildLocationResponse(c.Location),
		IsFavorite:      isFavorite,
	}
	for i := range c.Media {
		if c.Media[i].Type == models.MediaTypeImage {
			path := c.Media[i].ThumbnailPath
			if path == "" {
				path = c.Media[i].FilePath
			}
			summary.ThumbnailURL = resolveURL(ctx, store, path)
			break
		}
	}
	return summary
}

func buildCreatorResponse(ctx context.Context, store storage.Storage, c *models.Creator, policy auth.ViewPolicy, isFavorite bool) *dto.CreatorResponse {
	resp := &dto.CreatorResponse{
		ID:              c.ID,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		DisplayName:     displayName(c, policy),
		Age:             c.Age,
		Gender:          string(c.Gender),
		Bio:             c.Bio,
		Instagram:       c.Instagram,
		Tiktok:          c.Tiktok,
		Youtube:         c.Youtube,
		PortfolioURL:    c.PortfolioURL,
		Equipment:       c.Equipment,
		DeliveryTime:    c.DeliveryTime,
		Mobility:        c.Mobility,
		CanInvoice:      c.CanInvoice,
		PreviousClients: c.PreviousClients,
		AverageRating:   c.AverageRating,
		TotalRatings:    c.TotalRatings,
		VerifiedByNeads: c.VerifiedByNeads,
		Location:        buildLocationResponse(c.Location),
		Domains:         domainNames(c.Domains),
		ContentTypes:    contentTypeNames(c.ContentTypes),
		IsFavorite:      isFavorite,
		LastActivity:    c.LastActivity,
		CreatedAt:       c.CreatedAt,
	}
	if policy.MaskLastName {
		resp.LastName = ""
	}
	if policy.ShowPersonalInfo {
		resp.Email = c.Email
		resp.Phone = c.Phone
	}
	for i := range c.Media {
		resp.Media = append(resp.Media, buildMediaResponse(ctx, store, &c.Media[i]))
	}
	return resp
}

func buildRatingResponse(r *models.Rating) *dto.RatingResponse {
	return &dto.RatingResponse{
		ID:         r.ID,
		CreatorID:  r.CreatorID,
		RaterID:    r.RaterID,
		Score:      r.Score,
		Comment:    r.Comment,
		IsVerified: r.IsVerified,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

package models

import (
	"net/url"
	"strconv"
	"strings"
)

// CreatorSearchCriteria carries every optional filter of the gallery,
// search and map endpoints. Pointer fields distinguish "absent" from a
// zero value; absent filters never narrow the result.
type CreatorSearchCriteria struct {
	Query         string
	Domains       []string
	MinAge        *int
	MaxAge        *int
	Gender        string
	ContentType   string
	Country       string
	City          string
	MinRating     *float64
	CanInvoice    *bool
	VerifiedOnly  bool
	FavoritesOnly bool

	// Set by the handler from the authenticated user, never parsed.
	FavoritesOf string

	// Free-text search scope: gallery matches names only, the search
	// endpoint also matches the bio.
	IncludeBio bool

	Page     int
	PageSize int
}

// ParseSearchCriteria reads the filter parameters leniently: a value
// that does not parse, or a gender outside the known codes, counts as
// absent and narrows nothing. Only min_age > max_age is rejected, by
// the search service.
func ParseSearchCriteria(values url.Values) *CreatorSearchCriteria {
	criteria := &CreatorSearchCriteria{
		Query:       strings.TrimSpace(values.Get("query")),
		ContentType: strings.TrimSpace(values.Get("content_type")),
		Country:     strings.TrimSpace(values.Get("country")),
		City:        strings.TrimSpace(values.Get("city")),
	}

	switch gender := Gender(strings.ToUpper(strings.TrimSpace(values.Get("gender")))); gender {
	case GenderMale, GenderFemale, GenderOther:
		criteria.Gender = string(gender)
	}

	for _, domain := range values["domains"] {
		if domain = strings.TrimSpace(domain); domain != "" {
			criteria.Domains = append(criteria.Domains, domain)
		}
	}

	criteria.MinAge = queryInt(values, "min_age")
	criteria.MaxAge = queryInt(values, "max_age")
	criteria.MinRating = queryFloat(values, "min_rating")
	criteria.CanInvoice = queryBool(values, "can_invoice")

	if flag := queryBool(values, "verified_only"); flag != nil {
		criteria.VerifiedOnly = *flag
	}
	if flag := queryBool(values, "favorites_only"); flag != nil {
		criteria.FavoritesOnly = *flag
	}

	if page := queryInt(values, "page"); page != nil {
		criteria.Page = *page
	}
	if size := queryInt(values, "page_size"); size != nil {
		criteria.PageSize = *size
	}

	return criteria
}

func queryInt(values url.Values, key string) *int {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryFloat(values url.Values, key string) *float64 {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryBool(values url.Values, key string) *bool {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

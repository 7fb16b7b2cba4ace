package algorithms

import (
	"strings"

	"neads_backend/internal/models"
)

// Matches reports whether a creator satisfies every present criterion.
// Criteria combine with AND; the free-text query is an OR across the name
// fields (and the bio when IncludeBio is set). Absent criteria never
// narrow.
//
// favoriteIDs is the requesting user's favorite creator set, only
// consulted when FavoritesOnly is set.
func Matches(c *models.Creator, crit *models.CreatorSearchCriteria, favoriteIDs map[string]bool) bool {
	if crit.Query != "" && !matchesQuery(c, crit.Query, crit.IncludeBio) {
		return false
	}

	if len(crit.Domains) > 0 && !hasAnyDomain(c, crit.Domains) {
		return false
	}

	if crit.MinAge != nil && c.Age < *crit.MinAge {
		return false
	}
	if crit.MaxAge != nil && c.Age > *crit.MaxAge {
		return false
	}

	if crit.Gender != "" && c.Gender != models.Gender(crit.Gender) {
		return false
	}

	if crit.ContentType != "" && !hasContentType(c, crit.ContentType) {
		return false
	}

	if crit.Country != "" {
		if c.Location == nil || !containsFold(c.Location.Country, crit.Country) {
			return false
		}
	}
	if crit.City != "" {
		if c.Location == nil || !containsFold(c.Location.City, crit.City) {
			return false
		}
	}

	if crit.MinRating != nil && c.AverageRating < *crit.MinRating {
		return false
	}

	if crit.CanInvoice != nil && c.CanInvoice != *crit.CanInvoice {
		return false
	}

	if crit.VerifiedOnly && !c.VerifiedByNeads {
		return false
	}

	if crit.FavoritesOnly && !favoriteIDs[c.ID] {
		return false
	}

	return true
}

func matchesQuery(c *models.Creator, query string, includeBio bool) bool {
	if containsFold(c.FirstName, query) ||
		containsFold(c.LastName, query) ||
		containsFold(c.FullName(), query) {
		return true
	}
	return includeBio && containsFold(c.Bio, query)
}

func hasAnyDomain(c *models.Creator, wanted []string) bool {
	for _, w := range wanted {
		for _, d := range c.Domains {
			if strings.EqualFold(d.Name, w) {
				return true
			}
		}
	}
	return false
}

func hasContentType(c *models.Creator, wanted string) bool {
	for _, ct := range c.ContentTypes {
		if strings.EqualFold(ct.Name, wanted) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// DedupeDomains drops duplicate and blank entries while keeping order.
func DedupeDomains(domains []string) []string {
	seen := make(map[string]bool, len(domains))
	out := domains[:0]
	for _, d := range domains {
		key := strings.ToLower(strings.TrimSpace(d))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}

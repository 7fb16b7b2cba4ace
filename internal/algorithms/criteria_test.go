package algorithms

import (
	"testing"

	"neads_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func testCreator() *models.Creator {
	c := &models.Creator{
		FirstName:       "Alice",
		LastName:        "Martin",
		Age:             28,
		Gender:          models.GenderFemale,
		Bio:             "Food and travel content from Lyon",
		CanInvoice:      true,
		AverageRating:   4.2,
		VerifiedByNeads: true,
		Domains: []models.Domain{
			{Name: "food"},
			{Name: "travel"},
		},
		ContentTypes: []models.ContentType{
			{Name: "video"},
		},
		Location: &models.Location{
			City:    "Lyon",
			Country: "France",
		},
	}
	c.ID = "creator-1"
	return c
}

func TestMatchesEmptyCriteria(t *testing.T) {
	assert.True(t, Matches(testCreator(), &models.CreatorSearchCriteria{}, nil))
}

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		includeBio bool
		want       bool
	}{
		{"first name case-insensitive", "alice", false, true},
		{"last name substring", "mart", false, true},
		{"full name", "alice martin", false, true},
		{"bio excluded from gallery", "travel content", false, false},
		{"bio included in search", "travel content", true, true},
		{"no match", "bob", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crit := &models.CreatorSearchCriteria{Query: tt.query, IncludeBio: tt.includeBio}
			assert.Equal(t, tt.want, Matches(testCreator(), crit, nil))
		})
	}
}

func TestMatchesCriteriaAND(t *testing.T) {
	tests := []struct {
		name string
		crit models.CreatorSearchCriteria
		want bool
	}{
		{"age in range", models.CreatorSearchCriteria{MinAge: intPtr(18), MaxAge: intPtr(30)}, true},
		{"age boundary inclusive", models.CreatorSearchCriteria{MinAge: intPtr(28), MaxAge: intPtr(28)}, true},
		{"age below min", models.CreatorSearchCriteria{MinAge: intPtr(30)}, false},
		{"age above max", models.CreatorSearchCriteria{MaxAge: intPtr(27)}, false},
		{"gender match", models.CreatorSearchCriteria{Gender: "F"}, true},
		{"gender mismatch", models.CreatorSearchCriteria{Gender: "M"}, false},
		{"domain membership", models.CreatorSearchCriteria{Domains: []string{"beauty", "food"}}, true},
		{"domain case-insensitive", models.CreatorSearchCriteria{Domains: []string{"FOOD"}}, true},
		{"no domain overlap", models.CreatorSearchCriteria{Domains: []string{"beauty"}}, false},
		{"content type", models.CreatorSearchCriteria{ContentType: "video"}, true},
		{"wrong content type", models.CreatorSearchCriteria{ContentType: "photo"}, false},
		{"city substring", models.CreatorSearchCriteria{City: "lyo"}, true},
		{"country", models.CreatorSearchCriteria{Country: "france"}, true},
		{"wrong city", models.CreatorSearchCriteria{City: "Paris"}, false},
		{"min rating met", models.CreatorSearchCriteria{MinRating: floatPtr(4.0)}, true},
		{"min rating not met", models.CreatorSearchCriteria{MinRating: floatPtr(4.5)}, false},
		{"can invoice true", models.CreatorSearchCriteria{CanInvoice: boolPtr(true)}, true},
		{"can invoice false filters out", models.CreatorSearchCriteria{CanInvoice: boolPtr(false)}, false},
		{"verified only", models.CreatorSearchCriteria{VerifiedOnly: true}, true},
		{"combined all pass", models.CreatorSearchCriteria{
			Query:        "alice",
			MinAge:       intPtr(20),
			Gender:       "F",
			Domains:      []string{"food"},
			VerifiedOnly: true,
		}, true},
		{"combined one fails", models.CreatorSearchCriteria{
			Query:  "alice",
			MinAge: intPtr(20),
			Gender: "M",
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(testCreator(), &tt.crit, nil))
		})
	}
}

func TestMatchesLocationMissing(t *testing.T) {
	c := testCreator()
	c.Location = nil

	assert.False(t, Matches(c, &models.CreatorSearchCriteria{City: "Lyon"}, nil))
	assert.False(t, Matches(c, &models.CreatorSearchCriteria{Country: "France"}, nil))
	assert.True(t, Matches(c, &models.CreatorSearchCriteria{}, nil))
}

func TestMatchesFavoritesOnly(t *testing.T) {
	crit := &models.CreatorSearchCriteria{FavoritesOnly: true}

	assert.True(t, Matches(testCreator(), crit, map[string]bool{"creator-1": true}))
	assert.False(t, Matches(testCreator(), crit, map[string]bool{"creator-2": true}))
	assert.False(t, Matches(testCreator(), crit, nil))
}

func TestDedupeDomains(t *testing.T) {
	assert.Equal(t, []string{"food", "travel"}, DedupeDomains([]string{"food", "Food", "travel", "", "FOOD"}))
	assert.Empty(t, DedupeDomains([]string{"", " "}))
}

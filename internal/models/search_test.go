package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchCriteriaReadsValidValues(t *testing.T) {
	values := url.Values{
		"query":       {" travel "},
		"min_age":     {"18"},
		"max_age":     {"30"},
		"gender":      {"f"},
		"domains":     {"Food", " Travel ", ""},
		"min_rating":  {"4.5"},
		"can_invoice": {"true"},
		"city":        {"Paris"},
		"page":        {"2"},
		"page_size":   {"10"},
	}

	criteria := ParseSearchCriteria(values)

	assert.Equal(t, "travel", criteria.Query)
	require.NotNil(t, criteria.MinAge)
	assert.Equal(t, 18, *criteria.MinAge)
	require.NotNil(t, criteria.MaxAge)
	assert.Equal(t, 30, *criteria.MaxAge)
	assert.Equal(t, "F", criteria.Gender)
	assert.Equal(t, []string{"Food", "Travel"}, criteria.Domains)
	require.NotNil(t, criteria.MinRating)
	assert.Equal(t, 4.5, *criteria.MinRating)
	require.NotNil(t, criteria.CanInvoice)
	assert.True(t, *criteria.CanInvoice)
	assert.Equal(t, "Paris", criteria.City)
	assert.Equal(t, 2, criteria.Page)
	assert.Equal(t, 10, criteria.PageSize)
}

func TestParseSearchCriteriaDropsUnparseableValues(t *testing.T) {
	values := url.Values{
		"min_age":     {"abc"},
		"max_age":     {"12.5"},
		"min_rating":  {"high"},
		"can_invoice": {"maybe"},
		"gender":      {"banana"},
		"page":        {"first"},
	}

	criteria := ParseSearchCriteria(values)

	assert.Nil(t, criteria.MinAge)
	assert.Nil(t, criteria.MaxAge)
	assert.Nil(t, criteria.MinRating)
	assert.Nil(t, criteria.CanInvoice)
	assert.Empty(t, criteria.Gender)
	assert.Zero(t, criteria.Page)
}

func TestParseSearchCriteriaEmptyQuery(t *testing.T) {
	criteria := ParseSearchCriteria(url.Values{})

	assert.Empty(t, criteria.Query)
	assert.Nil(t, criteria.MinAge)
	assert.Nil(t, criteria.CanInvoice)
	assert.False(t, criteria.VerifiedOnly)
	assert.False(t, criteria.FavoritesOnly)
}

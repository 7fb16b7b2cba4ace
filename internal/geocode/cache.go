package geocode

import (
	"context"
	"strings"
	"sync"
)

// CachedGeocoder memoizes lookups so an import run hits the upstream
// service once per distinct address. The cache is bounded; when full,
// the oldest entry is evicted.
type CachedGeocoder struct {
	inner   Geocoder
	maxSize int

	mu      sync.Mutex
	entries map[string]*Result
	order   []string
}

func NewCachedGeocoder(inner Geocoder, maxSize int) *CachedGeocoder {
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &CachedGeocoder{
		inner:   inner,
		maxSize: maxSize,
		entries: make(map[string]*Result),
	}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, city, country string) (*Result, error) {
	key := cacheKey(city, country)

	c.mu.Lock()
	if result, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return result, nil
	}
	c.mu.Unlock()

	result, err := c.inner.Geocode(ctx, city, country)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if _, ok := c.entries[key]; !ok {
		if len(c.order) >= c.maxSize {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.entries[key] = result
		c.order = append(c.order, key)
	}
	c.mu.Unlock()

	return result, nil
}

// Len reports the number of cached addresses.
func (c *CachedGeocoder) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func cacheKey(city, country string) string {
	return strings.ToLower(strings.TrimSpace(city)) + "|" + strings.ToLower(strings.TrimSpace(country))
}

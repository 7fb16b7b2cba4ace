package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"neads_backend/database"
	"neads_backend/internal/config"
	"neads_backend/internal/geocode"
	"neads_backend/internal/logger"
	"neads_backend/internal/repositories"
	"neads_backend/internal/services"
	"neads_backend/internal/services/dto"
	"neads_backend/internal/storage"
)

// Expected CSV header: first_name, last_name, email, phone, age, gender,
// bio, instagram, tiktok, youtube, portfolio_url, domains, content_types,
// city, country, postal_code, latitude, longitude. Multi-value columns
// (domains, content_types) are separated with "|". Rows without
// coordinates are geocoded from city and country.
func main() {
	filePath := flag.String("file", "", "path to the creators CSV file")
	geocodeURL := flag.String("geocode-url", "", "base URL of a Nominatim-compatible geocoding service")
	cacheSize := flag.Int("geocode-cache", 500, "max number of cached geocoded addresses")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: importer -file creators.csv [-geocode-url URL]")
		os.Exit(2)
	}

	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	creatorService := services.NewCreatorService(
		repositories.NewCreatorRepository(),
		repositories.NewTaxonomyRepository(),
		repositories.NewFavoriteRepository(),
		store,
	)

	// The cache lives for this run only; repeated addresses in one file
	// cost a single upstream request.
	geocoder := geocode.NewCachedGeocoder(geocode.NewNominatimGeocoder(*geocodeURL), *cacheSize)

	file, err := os.Open(*filePath)
	if err != nil {
		logger.Fatal("Failed to open CSV file", "path", *filePath, "error", err)
	}
	defer file.Close()

	ctx := context.Background()
	imported, skipped := 0, 0

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		logger.Fatal("Failed to read CSV header", "error", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"first_name", "last_name", "age", "gender"} {
		if _, ok := columns[required]; !ok {
			logger.Fatal("CSV is missing a required column", "column", required)
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			logger.Warn("Skipping malformed CSV row", "line", line, "error", err)
			skipped++
			continue
		}

		req, err := buildRequest(ctx, columns, record, geocoder)
		if err != nil {
			logger.Warn("Skipping row", "line", line, "error", err)
			skipped++
			continue
		}

		if _, err := creatorService.Create(ctx, db, req, nil); err != nil {
			logger.Warn("Failed to import creator", "line", line, "name", req.FirstName+" "+req.LastName, "error", err)
			skipped++
			continue
		}
		imported++
	}

	logger.Info("Import finished",
		"imported", imported,
		"skipped", skipped,
		"geocoded_addresses", geocoder.Len(),
	)
}

func buildRequest(ctx context.Context, columns map[string]int, record []string, geocoder geocode.Geocoder) (*dto.CreateCreatorRequest, error) {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	age, err := strconv.Atoi(cell("age"))
	if err != nil {
		return nil, fmt.Errorf("invalid age %q", cell("age"))
	}

	req := &dto.CreateCreatorRequest{
		FirstName:    cell("first_name"),
		LastName:     cell("last_name"),
		Email:        cell("email"),
		Phone:        cell("phone"),
		Age:          age,
		Gender:       normalizeGender(cell("gender")),
		Bio:          cell("bio"),
		Instagram:    cell("instagram"),
		Tiktok:       cell("tiktok"),
		Youtube:      cell("youtube"),
		PortfolioURL: cell("portfolio_url"),
		Domains:      splitList(cell("domains")),
		ContentTypes: splitList(cell("content_types")),
	}

	city, country := cell("city"), cell("country")
	if city == "" {
		return req, nil
	}

	location := &dto.LocationPayload{
		City:       city,
		Country:    country,
		PostalCode: cell("postal_code"),
	}

	lat, latErr := strconv.ParseFloat(cell("latitude"), 64)
	lng, lngErr := strconv.ParseFloat(cell("longitude"), 64)
	switch {
	case latErr == nil && lngErr == nil:
		location.Latitude = &lat
		location.Longitude = &lng
	default:
		result, err := geocoder.Geocode(ctx, city, country)
		if err != nil {
			if errors.Is(err, geocode.ErrNotFound) {
				logger.Warn("Address could not be geocoded, importing without coordinates", "city", city, "country", country)
			} else {
				return nil, fmt.Errorf("geocoding failed for %s, %s: %w", city, country, err)
			}
		} else {
			location.Latitude = &result.Latitude
			location.Longitude = &result.Longitude
		}
	}

	req.Location = location
	return req, nil
}

// normalizeGender accepts both the single-letter codes and full words.
func normalizeGender(value string) string {
	switch strings.ToLower(value) {
	case "m", "male":
		return "M"
	case "f", "female":
		return "F"
	case "o", "other":
		return "O"
	default:
		return strings.ToUpper(value)
	}
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

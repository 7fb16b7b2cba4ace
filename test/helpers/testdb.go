package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"neads_backend/internal/auth"
	"neads_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the raw password placed in
// PasswordHash.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	hash, err := auth.HashPassword(user.PasswordHash)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user.PasswordHash = hash

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	return db.Create(user).Error
}

// CreateAndLoginUser creates a user and logs it in through the API,
// returning the bearer token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		Role:         role,
		FirstName:    "Test",
		LastName:     "User",
	}
	err := CreateUser(t, db, user)
	assert.NoError(t, err, "creating the test user should not fail")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+body)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(body), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// UniqueEmail avoids collisions between tests sharing the database.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateTestCreator inserts a creator profile with a location. Pass nil
// coordinates for a creator that must stay off the map.
func CreateTestCreator(t *testing.T, db *gorm.DB, firstName, lastName, city string, lat, lng *float64) models.Creator {
	creator := models.Creator{
		FirstName: firstName,
		LastName:  lastName,
		Email:     UniqueEmail("creator"),
		Phone:     "+33600000000",
		Age:       25,
		Gender:    models.GenderFemale,
		Bio:       "Test creator bio",
	}
	if err := db.Create(&creator).Error; err != nil {
		t.Fatalf("Failed to create test creator: %v", err)
	}

	location := models.Location{
		CreatorID: creator.ID,
		City:      city,
		Country:   "France",
		Latitude:  lat,
		Longitude: lng,
	}
	if err := db.Create(&location).Error; err != nil {
		t.Fatalf("Failed to create test location: %v", err)
	}
	creator.Location = &location

	return creator
}

package models

type Location struct {
	BaseModel
	CreatorID  string `gorm:"type:uuid;uniqueIndex;not null"`
	City       string `gorm:"index"`
	Country    string `gorm:"index"`
	PostalCode string

	// Nullable: creators without coordinates are excluded from the map.
	Latitude  *float64
	Longitude *float64
}

package models

type Rating struct {
	BaseModel
	CreatorID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_ratings_creator_rater"`
	RaterID   string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_creator_rater"`

	Score   int `gorm:"not null"`
	Comment string

	// Consultant ratings are verified automatically at creation time.
	IsVerified bool    `gorm:"default:false"`
	VerifiedBy *string `gorm:"type:uuid"`
}

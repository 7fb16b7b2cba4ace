package models

type Favorite struct {
	BaseModel
	CreatorID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_creator_user"`
	UserID    string `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_creator_user"`
	Note      string

	Creator *Creator `gorm:"foreignKey:CreatorID"`
}

package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null"`
	PasswordHash string     `gorm:"not null"`
	Role         UserRole   `gorm:"type:varchar(20);not null"`
	Status       UserStatus `gorm:"type:varchar(20);default:'active'"`
	FirstName    string
	LastName     string

	// One-shot emailed login link
	TempLoginToken    string `gorm:"index"`
	TempLoginTokenExp *time.Time

	// Relations
	Creator   *Creator   `gorm:"foreignKey:UserID"`
	Favorites []Favorite `gorm:"foreignKey:UserID"`
}

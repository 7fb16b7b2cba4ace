package models

type Media struct {
	BaseModel
	CreatorID string    `gorm:"type:uuid;not null;index"`
	Type      MediaType `gorm:"type:varchar(10);not null;index"`

	FilePath      string `gorm:"not null"`
	ThumbnailPath string
	FileSize      int64
	ContentType   string

	Title      string
	OrderIndex int  `gorm:"default:0"`
	IsVerified bool `gorm:"default:false"`
}

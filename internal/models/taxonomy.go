package models

// Domain is an open vocabulary of creator specialities (beauty, food,
// travel, ...). Created on demand, attached many-to-many.
type Domain struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null"`
}

// ContentType tags the kind of content a creator produces (photo, video,
// ugc, ...).
type ContentType struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null"`
}

package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lib/pq"
)

type Creator struct {
	BaseModel
	UserID *string `gorm:"type:uuid;uniqueIndex"`

	FirstName string `gorm:"not null;index"`
	LastName  string `gorm:"not null;index"`
	Email     string `gorm:"index"`
	Phone     string
	Age       int    `gorm:"index"`
	Gender    Gender `gorm:"type:varchar(1)"`
	Bio       string

	// Social presence
	Instagram    string
	Tiktok       string
	Youtube      string
	PortfolioURL string

	// Working conditions
	Equipment       string
	DeliveryTime    string
	Mobility        bool           `gorm:"default:false"`
	CanInvoice      bool           `gorm:"default:false"`
	PreviousClients pq.StringArray `gorm:"type:text[]"`

	// Maintained by the rating write path, never set directly.
	AverageRating float64 `gorm:"default:0"`
	TotalRatings  int     `gorm:"default:0"`

	VerifiedByNeads bool `gorm:"default:false;index"`
	LastActivity    *time.Time

	// Relations
	Location     *Location     `gorm:"foreignKey:CreatorID"`
	Domains      []Domain      `gorm:"many2many:creator_domains;"`
	ContentTypes []ContentType `gorm:"many2many:creator_content_types;"`
	Media        []Media       `gorm:"foreignKey:CreatorID"`
	Ratings      []Rating      `gorm:"foreignKey:CreatorID"`
}

// FullName joins the name parts, skipping empty ones.
func (c *Creator) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// MaskedName returns the first name plus the last name initial, the form
// shown to client accounts.
func (c *Creator) MaskedName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	initial, _ := utf8.DecodeRuneInString(c.LastName)
	return strings.TrimSpace(c.FirstName + " " + string(initial) + ".")
}

// HasCoordinates reports whether the creator can appear on the map.
func (c *Creator) HasCoordinates() bool {
	return c.Location != nil && c.Location.Latitude != nil && c.Location.Longitude != nil
}

package models

type UserStatus string
type UserRole string
type Gender string
type MediaType string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleAdmin      UserRole = "admin"
	UserRoleConsultant UserRole = "consultant"
	UserRoleClient     UserRole = "client"
	UserRoleCreator    UserRole = "creator"

	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"

	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// MaxMediaPerType caps a creator's portfolio at 10 images and 10 videos.
const MaxMediaPerType = 10

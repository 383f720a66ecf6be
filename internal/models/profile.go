package models

import (
	"time"
)

// Profile holds a user's location-sharing state. One per user, created
// lazily on first access with sharing off and notifications on.
// Latitude, Longitude and LastLocationUpdate are nil until the first
// location update, and are always set together.
type Profile struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	UserID               uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Latitude             *float64   `gorm:"type:decimal(9,6)" json:"latitude"`
	Longitude            *float64   `gorm:"type:decimal(9,6)" json:"longitude"`
	LastLocationUpdate   *time.Time `json:"last_location_update"`
	SharingEnabled       bool       `gorm:"not null;default:false" json:"sharing_enabled"`
	NotificationsEnabled bool       `gorm:"not null;default:true" json:"notifications_enabled"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

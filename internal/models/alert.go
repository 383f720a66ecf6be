package models

import "time"

// ProximityAlert is a standing directive: notify UserID when FriendID comes
// within DistanceThresholdKm. Created in both directions when a friend
// request is accepted; unique per ordered (user, friend) pair.
type ProximityAlert struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              uint       `gorm:"not null;index:idx_alert_pair,unique" json:"user_id"`
	FriendID            uint       `gorm:"not null;index:idx_alert_pair,unique" json:"friend_id"`
	DistanceThresholdKm float64    `gorm:"not null;default:1" json:"distance_threshold_km"`
	Active              bool       `gorm:"not null;default:true" json:"active"`
	LastTriggeredAt     *time.Time `json:"last_triggered_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	User   User `gorm:"foreignKey:UserID" json:"-"`
	Friend User `gorm:"foreignKey:FriendID" json:"friend,omitempty"`
}

func (ProximityAlert) TableName() string {
	return "proximity_alerts"
}

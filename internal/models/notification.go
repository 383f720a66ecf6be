package models

import "time"

// ProximityNotification is an append-only record emitted by the evaluator.
// Only IsRead is mutable after creation.
type ProximityNotification struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index:idx_notif_pair" json:"user_id"`
	FriendID   uint      `gorm:"not null;index:idx_notif_pair" json:"friend_id"`
	DistanceKm float64   `gorm:"not null" json:"distance_km"`
	Message    string    `gorm:"type:text" json:"message"`
	IsRead     bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`

	Friend User `gorm:"foreignKey:FriendID" json:"-"`
}

func (ProximityNotification) TableName() string {
	return "proximity_notifications"
}
